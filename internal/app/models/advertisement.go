package models

type Advertisement struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	LinkURL     string `json:"linkUrl,omitempty" yaml:"linkUrl,omitempty"`
	StartDate   string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Active      bool   `json:"active" yaml:"active"`
}
