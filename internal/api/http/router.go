// Package http wires the URL shortening use case to its HTTP surface.
package http

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// requireJSONContentType gates routes that carry a request body. Unlike
// chi's AllowContentType it answers 400 with the service's error shape.
func requireJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
		if i := strings.Index(ct, ";"); i > -1 {
			ct = ct[:i]
		}

		if ct != "application/json" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, invalidContentTypeResponse)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getValidate() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

func NewRouter(logger *httplog.Logger, useCase urlUseCase, baseURL string) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"POST", "GET", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	h := newURLHandler(useCase, getValidate(), baseURL)

	r.Get("/", handleHealth)
	r.With(requireJSONContentType).Post("/shorten", h.shortenURL)
	r.Get("/decode/{shortCode}", h.decodeShortCode)
	r.Get("/{shortCode}", h.redirectShortCode)

	return r
}
