package models

type Prescription struct {
	ID            string           `json:"id,omitempty" yaml:"id,omitempty"`
	PatientID     string           `json:"patientId" yaml:"patientId"`
	DoctorID      string           `json:"doctorId" yaml:"doctorId"`
	AppointmentID string           `json:"appointmentId,omitempty" yaml:"appointmentId,omitempty"`
	Diagnosis     string           `json:"diagnosis,omitempty" yaml:"diagnosis,omitempty"`
	Medications   []MedicationLine `json:"medications,omitempty" yaml:"medications,omitempty"`
	Instructions  string           `json:"instructions,omitempty" yaml:"instructions,omitempty"`
	Attachments   []string         `json:"attachments,omitempty" yaml:"attachments,omitempty"`
	IssuedAt      string           `json:"issuedAt,omitempty" yaml:"issuedAt,omitempty"`
}

type MedicationLine struct {
	Name      string `json:"name" yaml:"name"`
	Potency   string `json:"potency,omitempty" yaml:"potency,omitempty"`
	Dosage    string `json:"dosage,omitempty" yaml:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty" yaml:"duration,omitempty"`
}
