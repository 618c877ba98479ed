package validation

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireRejection(t *testing.T, err error) *RejectionError {
	t.Helper()

	var rejErr *RejectionError
	require.Error(t, err)
	require.True(t, errors.As(err, &rejErr))

	return rejErr
}

func TestValidator_ValidateLongURL(t *testing.T) {
	v := New(DefaultLimits)

	t.Run("accepts", func(t *testing.T) {
		testCases := []struct {
			name string
			raw  string
			want string
		}{
			{"simple https", "https://example.com", "https://example.com"},
			{"simple http", "http://example.com", "http://example.com"},
			{"uppercase scheme", "HTTPS://EXAMPLE.COM", "HTTPS://EXAMPLE.COM"},
			{"subdomain and path", "https://sub.example.co.uk/some/path?q=1", "https://sub.example.co.uk/some/path?q=1"},
			{"localhost with port", "http://localhost:8080/health", "http://localhost:8080/health"},
			{"ipv4", "http://192.168.0.1/admin", "http://192.168.0.1/admin"},
			{"trailing slash", "https://example.com/", "https://example.com/"},
			{"surrounding whitespace", "  https://example.com  ", "https://example.com"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := v.ValidateLongURL(tc.raw)

				assert.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := v.ValidateLongURL(raw)
			rejErr := requireRejection(t, err)

			assert.Equal(t, http.StatusBadRequest, rejErr.Status)
			assert.Equal(t, "URL cannot be empty", rejErr.Reason)
		}
	})

	t.Run("rejects bad format", func(t *testing.T) {
		testCases := []string{
			"example.com",
			"ftp://example.com",
			"javascript:alert(1)",
			"https://",
			"http://256.1.1.1",
			"http://exa mple.com",
		}

		for _, raw := range testCases {
			_, err := v.ValidateLongURL(raw)
			rejErr := requireRejection(t, err)

			assert.Equalf(t, http.StatusUnprocessableEntity, rejErr.Status, "raw: %q", raw)
			assert.Contains(t, rejErr.Reason, "Invalid URL format")
		}
	})

	t.Run("length boundary", func(t *testing.T) {
		prefix := "https://example.com/"
		atLimit := prefix + strings.Repeat("a", DefaultLimits.MaxURLLength-len(prefix))

		got, err := v.ValidateLongURL(atLimit)
		assert.NoError(t, err)
		assert.Equal(t, atLimit, got)

		_, err = v.ValidateLongURL(atLimit + "a")
		rejErr := requireRejection(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, rejErr.Status)
		assert.Contains(t, rejErr.Reason, "URL too long")
	})

	t.Run("length counts characters not bytes", func(t *testing.T) {
		prefix := "https://example.com/"
		multibyte := prefix + strings.Repeat("é", DefaultLimits.MaxURLLength-utf8.RuneCountInString(prefix))
		require.Greater(t, len(multibyte), DefaultLimits.MaxURLLength)

		got, err := v.ValidateLongURL(multibyte)
		assert.NoError(t, err)
		assert.Equal(t, multibyte, got)

		_, err = v.ValidateLongURL(multibyte + "é")
		rejErr := requireRejection(t, err)
		assert.Contains(t, rejErr.Reason, "URL too long")
	})
}

func TestValidator_ValidateShortCode(t *testing.T) {
	v := New(DefaultLimits)

	t.Run("accepts", func(t *testing.T) {
		got, err := v.ValidateShortCode("  2Bi ")

		assert.NoError(t, err)
		assert.Equal(t, "2Bi", got)
	})

	t.Run("rejects blank", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			_, err := v.ValidateShortCode(raw)
			rejErr := requireRejection(t, err)

			assert.Equal(t, http.StatusBadRequest, rejErr.Status)
			assert.Equal(t, "Invalid short URL format", rejErr.Reason)
		}
	})

	t.Run("length boundary", func(t *testing.T) {
		atLimit := strings.Repeat("z", DefaultLimits.MaxShortCodeLength)

		got, err := v.ValidateShortCode(atLimit)
		assert.NoError(t, err)
		assert.Equal(t, atLimit, got)

		_, err = v.ValidateShortCode(atLimit + "z")
		rejErr := requireRejection(t, err)
		assert.Equal(t, http.StatusBadRequest, rejErr.Status)

		multibyte := strings.Repeat("é", DefaultLimits.MaxShortCodeLength)
		got, err = v.ValidateShortCode(multibyte)
		assert.NoError(t, err)
		assert.Equal(t, multibyte, got)
	})
}
