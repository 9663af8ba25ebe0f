package constvars

const (
	MethodGet    = "GET"
	MethodHead   = "HEAD"
	MethodPost   = "POST"
	MethodPut    = "PUT"
	MethodPatch  = "PATCH"
	MethodDelete = "DELETE"
)

const (
	MIMETextPlain           = "text/plain"
	MIMETextHTML            = "text/html"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationFHIRJSON = "application/fhir+json"
	MIMEApplicationForm     = "application/x-www-form-urlencoded"
	MIMEOctetStream         = "application/octet-stream"
	MIMEMultipartForm       = "multipart/form-data"

	MIMETextPlainCharsetUTF8       = "text/plain; charset=utf-8"
	MIMEApplicationJSONCharsetUTF8 = "application/json; charset=utf-8"

	// MIMESuffixJSON marks structured syntax types such as application/problem+json.
	MIMESuffixJSON = "+json"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusNoContent           = 204
	StatusMultipleChoices     = 300
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusRequestTimeout      = 408
	StatusConflict            = 409
	StatusUnprocessableEntity = 422
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization      = "Authorization"
	HeaderAccept             = "Accept"
	HeaderContentType        = "Content-Type"
	HeaderContentDisposition = "Content-Disposition"
	HeaderUserAgent          = "User-Agent"
	HeaderXRequestID         = "X-Request-ID"
)

const (
	AuthSchemeBearer = "Bearer"
)
