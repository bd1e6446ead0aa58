package model

// AppError is the only error payload returned by this service in "strict mode".
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Stage   string `json:"stage"`

	URL     string `json:"url,omitempty"`
	Snippet string `json:"snippet,omitempty"` // <= 200 chars recommended
	Hint    string `json:"hint,omitempty"`
}

type ErrorResponse struct {
	Error AppError `json:"error"`
}
