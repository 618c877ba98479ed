// Package validation holds the input rules that gate every request before it
// reaches storage. The rules live outside the transport layer so the same
// checks apply whether a value arrives in a JSON body or a URL path segment.
package validation

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Scheme http/https, then a dotted hostname with a 2-6 letter TLD, localhost,
// or a dotted-quad IPv4 with octets 0-255, an optional port and an optional
// path/query. Compiled once at startup.
var urlPattern = regexp.MustCompile(`(?i)^https?://` +
	`(?:(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,6}\.?` +
	`|localhost` +
	`|(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?))` +
	`(?::\d+)?` +
	`(?:/?|[/?]\S+)$`)

// RejectionError is a client-caused input rejection. It carries the HTTP
// status the transport layer must answer with: 400 for structural problems,
// 422 for well-formed but semantically invalid input.
type RejectionError struct {
	Reason string
	Status int
}

func (e *RejectionError) Error() string {
	return e.Reason
}

func reject(status int, reason string) *RejectionError {
	return &RejectionError{Reason: reason, Status: status}
}

// Limits holds the configurable length bounds for validated inputs.
type Limits struct {
	MaxURLLength       int
	MaxShortCodeLength int
}

// DefaultLimits matches the reference deployment.
var DefaultLimits = Limits{
	MaxURLLength:       2048,
	MaxShortCodeLength: 10,
}

// Validator checks candidate long URLs and short codes against the configured
// limits. All methods are pure and safe for concurrent use.
type Validator struct {
	limits Limits
}

func New(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// ValidateLongURL decides whether raw is an acceptable long URL. On accept it
// returns the trimmed string, which is the canonical value to store.
func (v *Validator) ValidateLongURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return "", reject(http.StatusBadRequest, "URL cannot be empty")
	}

	if !urlPattern.MatchString(trimmed) {
		return "", reject(http.StatusUnprocessableEntity,
			"Invalid URL format. URL must start with http:// or https://")
	}

	// Limits count characters, not bytes, so multibyte paths are not
	// penalized.
	if utf8.RuneCountInString(trimmed) > v.limits.MaxURLLength {
		return "", reject(http.StatusUnprocessableEntity,
			fmt.Sprintf("URL too long. Maximum length is %d characters", v.limits.MaxURLLength))
	}

	return trimmed, nil
}

// ValidateShortCode decides whether raw has the shape of an issued short
// code. On accept it returns the trimmed string.
func (v *Validator) ValidateShortCode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" || utf8.RuneCountInString(trimmed) > v.limits.MaxShortCodeLength {
		return "", reject(http.StatusBadRequest, "Invalid short URL format")
	}

	return trimmed, nil
}
