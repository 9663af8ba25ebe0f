package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "HOMEO_CLI_"
)

const (
	DefaultRequestTimeoutInMilliseconds = 30000
	DefaultRetryAttempts                = 3
	DefaultRetryDelayInMilliseconds     = 1000
	DefaultTokenStorageKey              = "token"
	DefaultUploadFieldName              = "file"
	DefaultUploadFilesFieldName         = "files"
)

const (
	CredentialsDriverNone  = "none"
	CredentialsDriverFile  = "file"
	CredentialsDriverRedis = "redis"
	CredentialsDriverJWT   = "jwt"
)

const (
	ClinicRoleAdmin   = "admin"
	ClinicRoleDoctor  = "doctor"
	ClinicRolePatient = "patient"
	ClinicRoleStaff   = "staff"
)

const (
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
	OutputFormatTable = "table"
)
