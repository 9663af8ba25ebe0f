package models

const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

type Appointment struct {
	ID                 string `json:"id,omitempty" yaml:"id,omitempty"`
	PatientID          string `json:"patientId" yaml:"patientId"`
	DoctorID           string `json:"doctorId" yaml:"doctorId"`
	Date               string `json:"date" yaml:"date"`
	Time               string `json:"time" yaml:"time"`
	Reason             string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Status             string `json:"status,omitempty" yaml:"status,omitempty"`
	Notes              string `json:"notes,omitempty" yaml:"notes,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty" yaml:"cancellationReason,omitempty"`
}
