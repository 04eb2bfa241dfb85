package types

// ApiResponse is the envelope every handler returns. Message is a short
// machine-readable reason; stack traces never leave the process.
type ApiResponse struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}
