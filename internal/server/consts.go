package server

const (
	HealthEndpoint  = "/health"
	IndexPath       = "/"
	ValidatePath    = "/validate"
	ReportPath      = "/report"
	APIValidatePath = "/api/validate"
	APIReportPath   = "/api/report"
)

const (
	StatusHealthy = "healthy"
)

const (
	MessageInvalidRequestBody = "Invalid request body"
	MessageValidationComplete = "Analysis Complete!"
)

const (
	ErrorCodeInvalidRequestBody = "invalid_request_body"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxRequestID    = "request_id"
	ctxCredential   = "credential"
)
