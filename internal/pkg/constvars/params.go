package constvars

const (
	URLQueryParamSearch    = "search"
	URLQueryParamPage      = "page"
	URLQueryParamPageSize  = "pageSize"
	URLQueryParamPatientID = "patientId"
	URLQueryParamDoctorID  = "doctorId"
	URLQueryParamStatus    = "status"
	URLQueryParamDate      = "date"
	URLQueryParamThreshold = "threshold"
)
