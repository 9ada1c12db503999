package logx

const (
	FieldAppID           = "app-id"
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldDiscount        = "discount"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldRegion          = "region"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldSubscriberID    = "subscriber-id"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
