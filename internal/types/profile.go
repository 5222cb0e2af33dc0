// Package types provides type definitions for the records exchanged between
// the stores, the interview flow, and the document generator.
package types

import (
	"github.com/go-playground/validator/v10"
)

// UserProfile represents a job applicant's personal and professional details.
// All fields are optional; validation only checks formats when a value is present.
type UserProfile struct {
	FullName            string           `json:"full_name"`
	ContactEmail        string           `json:"contact_email" validate:"omitempty,email"`
	PhoneNumber         string           `json:"phone_number"`
	ProfessionalSummary string           `json:"professional_summary"`
	Skills              []string         `json:"skills"`
	Experiences         []WorkExperience `json:"experiences"`
	Education           []Education      `json:"education"`
}

// WorkExperience represents a single work history entry.
type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education represents a single education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	GraduationYear string `json:"graduation_year"`
}

// Validate checks the optional format constraints on the profile.
func (p *UserProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
