package models

type Staff struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Role       string `json:"role,omitempty" yaml:"role,omitempty"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	HiredAt    string `json:"hiredAt,omitempty" yaml:"hiredAt,omitempty"`
	Active     bool   `json:"active" yaml:"active"`
}
