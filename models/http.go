package models

// Response is the uniform JSON envelope for successful API responses.
// Every endpoint responds with this shape; reads that match nothing still
// answer HTTP 200 with Data nil and Error set to "No Content" rather than
// a 404 — a compatibility convention of the API.
type Response struct {
	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Data carries the endpoint-specific payload, or nil for "no content".
	Data any `json:"data"`

	// Error is nil on success and "No Content" on empty reads.
	Error any `json:"error"`
}

// ErrorPayload is the uniform JSON body for failed requests. Every error,
// regardless of kind, produces this shape with only StatusCode and Message
// varying.
type ErrorPayload struct {
	// StatusCode duplicates the HTTP status of the response.
	StatusCode int `json:"statusCode"`

	// Error is the canonical HTTP status text for StatusCode.
	Error string `json:"error"`

	// Message describes the specific failure.
	Message string `json:"message"`

	// Stack carries a server stack trace. Populated only in dev mode.
	Stack string `json:"stack,omitempty"`
}

// SignInData is the payload of a successful sign-in response.
type SignInData struct {
	// AccessToken is the signed JWT to present as a bearer token.
	AccessToken string `json:"access_token"`

	// User is the reduced record of the authenticated account.
	User PublicUser `json:"user"`
}
