package response

// StandardApiResponse wraps every reply, success or failure.
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // mirrors the HTTP status
	Message    string      `json:"message"`          // human-readable summary
	Data       interface{} `json:"data,omitempty"`   // payload; session state on rejected edits
	Errors     interface{} `json:"errors,omitempty"` // validation or error details
}
