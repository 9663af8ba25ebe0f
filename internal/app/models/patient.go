package models

type Patient struct {
	ID               string   `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName        string   `json:"firstName" yaml:"firstName"`
	LastName         string   `json:"lastName" yaml:"lastName"`
	Email            string   `json:"email,omitempty" yaml:"email,omitempty"`
	Phone            string   `json:"phone,omitempty" yaml:"phone,omitempty"`
	Gender           string   `json:"gender,omitempty" yaml:"gender,omitempty"`
	DateOfBirth      string   `json:"dateOfBirth,omitempty" yaml:"dateOfBirth,omitempty"`
	Address          string   `json:"address,omitempty" yaml:"address,omitempty"`
	BloodGroup       string   `json:"bloodGroup,omitempty" yaml:"bloodGroup,omitempty"`
	Allergies        []string `json:"allergies,omitempty" yaml:"allergies,omitempty"`
	EmergencyContact string   `json:"emergencyContact,omitempty" yaml:"emergencyContact,omitempty"`
	CreatedAt        string   `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt        string   `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}
