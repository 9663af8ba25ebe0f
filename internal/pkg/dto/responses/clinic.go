package responses

type Login struct {
	Token string         `json:"token"`
	User  map[string]any `json:"user,omitempty"`
	Role  string         `json:"role,omitempty"`
}

type DoctorAvailability struct {
	DoctorID string   `json:"doctorId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}
