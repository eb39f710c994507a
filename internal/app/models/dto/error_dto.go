package dto

// ErrorCode represents standardized error codes
type ErrorCode string

const (
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeBadRequest       ErrorCode = "REQ_001"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
)

// ErrorView is the template data for the error page
type ErrorView struct {
	Status    int
	Code      ErrorCode
	Title     string
	Message   string
	RequestID string
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
