package types

import (
	"github.com/go-playground/validator/v10"
)

// JobDescription represents a target role and its requirements.
type JobDescription struct {
	CompanyName      string   `json:"company_name"`
	PositionTitle    string   `json:"position_title"`
	Responsibilities string   `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`
	JobLocation      string   `json:"job_location"`
	JobSummary       string   `json:"job_summary"`
	AdditionalNotes  string   `json:"additional_notes,omitempty"`
}

// Validate checks the optional format constraints on the job description.
func (j *JobDescription) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
