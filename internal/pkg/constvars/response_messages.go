package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	LoginSuccessMessage  = "successfully login, token stored under %q"
	LogoutSuccessMessage = "successfully logout, token %q removed"
)
