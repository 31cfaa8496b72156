package dto

// APIResponse is the wire envelope every endpoint returns.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a success envelope.
func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Fail wraps a user-facing error message in a failure envelope.
func Fail(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}

// PageParams is the shared limit/offset query pair for offset-paginated
// listings.
type PageParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
