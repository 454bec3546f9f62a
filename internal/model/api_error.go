package model

// APIError is the envelope used by every non-200 response. The numeric
// Status mirrors the HTTP status code so clients can branch on the body
// alone.
type APIError struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}
