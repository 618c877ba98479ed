package http

// shortenRequest represents the structure for a request to shorten a URL.
// The field is a pointer so a missing "url" key is distinguishable from an
// empty string, which the domain validator rejects with its own message.
type shortenRequest struct {
	URL *string `json:"url" validate:"required"`
}

// shortenResponse is returned on successful creation. ShortURL is absolute.
type shortenResponse struct {
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

// decodeResponse is returned by the decode route. ShortURL carries the
// requested code, not the absolute URL.
type decodeResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// errorResponse is the shape of every failed request. ShortURL is only set
// on not-found answers, echoing the code that was asked for.
type errorResponse struct {
	Error    string `json:"error"`
	ShortURL string `json:"short_url,omitempty"`
}

// healthResponse is the liveness answer for the root route.
type healthResponse struct {
	Message string `json:"message"`
}

var (
	invalidContentTypeResponse = errorResponse{Error: "Content-Type must be application/json"}
	emptyRequestBodyResponse   = errorResponse{Error: "Request body must contain valid JSON"}
	invalidRequestBodyResponse = errorResponse{Error: "Request body must contain valid JSON"}
	missingURLFieldResponse    = errorResponse{Error: "Missing required field: url"}
)

func serverErrorResponse(context string) errorResponse {
	return errorResponse{Error: "Internal server error occurred " + context}
}

func urlNotFoundResponse(shortCode string) errorResponse {
	return errorResponse{
		Error:    "Short URL not found",
		ShortURL: shortCode,
	}
}
