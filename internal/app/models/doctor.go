package models

type Doctor struct {
	ID              string           `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName       string           `json:"firstName" yaml:"firstName"`
	LastName        string           `json:"lastName" yaml:"lastName"`
	Email           string           `json:"email,omitempty" yaml:"email,omitempty"`
	Phone           string           `json:"phone,omitempty" yaml:"phone,omitempty"`
	Specialization  string           `json:"specialization,omitempty" yaml:"specialization,omitempty"`
	LicenseNumber   string           `json:"licenseNumber,omitempty" yaml:"licenseNumber,omitempty"`
	ConsultationFee float64          `json:"consultationFee,omitempty" yaml:"consultationFee,omitempty"`
	Schedule        []ScheduleWindow `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Active          bool             `json:"active" yaml:"active"`
}

type ScheduleWindow struct {
	Day       string `json:"day" yaml:"day"`
	StartTime string `json:"startTime" yaml:"startTime"`
	EndTime   string `json:"endTime" yaml:"endTime"`
}
