package model

// TokenResponse is the body of every endpoint that opens a session. The
// refresh token travels only in the cookie, never here.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ErrorResponse is the uniform error body. Message is a single string, or a
// list of strings for validation failures.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    any    `json:"message"`
}
