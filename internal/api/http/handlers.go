package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"urlshortener/internal/entity"
	"urlshortener/internal/validation"
)

type urlUseCase interface {
	ShortenURL(ctx context.Context, rawURL string) (*entity.URL, error)
	ResolveShortCode(ctx context.Context, rawCode string) (*entity.URL, error)
}

type urlHandler struct {
	useCase  urlUseCase
	validate *validator.Validate
	baseURL  string
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate, baseURL string) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		validate: validate,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, healthResponse{Message: "URL Shortener API is running!"})
}

// absoluteShortURL builds the public short URL for a code. The configured
// base URL wins; without one the request host is used, matching whatever
// address the caller reached us on.
func (h *urlHandler) absoluteShortURL(r *http.Request, shortCode string) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}

	return base + "/" + shortCode
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, missingURLFieldResponse)
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), *req.URL)
	if err != nil {
		var rejErr *validation.RejectionError
		if errors.As(err, &rejErr) {
			render.Status(r, rejErr.Status)
			render.JSON(w, r, errorResponse{Error: rejErr.Reason})
			return
		}

		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse("while shortening the URL"))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, shortenResponse{
		ShortURL:    h.absoluteShortURL(r, url.ShortCode),
		OriginalURL: url.OriginalURL,
	})
}

// resolve runs the shared lookup for the redirect and decode routes and
// renders the error cases. It returns nil once a response has been written.
func (h *urlHandler) resolve(w http.ResponseWriter, r *http.Request, errContext string) *entity.URL {
	shortCode := chi.URLParam(r, "shortCode")

	url, err := h.useCase.ResolveShortCode(r.Context(), shortCode)
	if err != nil {
		var rejErr *validation.RejectionError
		switch {
		case errors.As(err, &rejErr):
			render.Status(r, rejErr.Status)
			render.JSON(w, r, errorResponse{Error: rejErr.Reason})
		case errors.Is(err, entity.ErrURLNotFound):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, urlNotFoundResponse(shortCode))
		default:
			httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, serverErrorResponse(errContext))
		}

		return nil
	}

	return url
}

func (h *urlHandler) redirectShortCode(w http.ResponseWriter, r *http.Request) {
	url := h.resolve(w, r, "while resolving the short URL")
	if url == nil {
		return
	}

	http.Redirect(w, r, url.OriginalURL, http.StatusFound)
}

func (h *urlHandler) decodeShortCode(w http.ResponseWriter, r *http.Request) {
	url := h.resolve(w, r, "while decoding the short URL")
	if url == nil {
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, decodeResponse{
		OriginalURL: url.OriginalURL,
		ShortURL:    url.ShortCode,
	})
}
