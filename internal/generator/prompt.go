package generator

import (
	"fmt"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/prompts"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// BuildBaseResumeText renders the profile as plain resume text. This text is
// the input the model tailors, not the final output.
func BuildBaseResumeText(user *types.UserProfile) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("Name: %s", user.FullName))
	lines = append(lines, fmt.Sprintf("Email: %s", user.ContactEmail))
	lines = append(lines, fmt.Sprintf("Phone: %s", user.PhoneNumber))
	lines = append(lines, "\nProfessional Summary:")
	lines = append(lines, user.ProfessionalSummary)

	lines = append(lines, "\nSkills:")
	for _, skill := range user.Skills {
		lines = append(lines, fmt.Sprintf("- %s", skill))
	}

	lines = append(lines, "\nExperience:")
	for _, exp := range user.Experiences {
		lines = append(lines, fmt.Sprintf("%s at %s (%s)", exp.Role, exp.Company, exp.Duration))
		lines = append(lines, fmt.Sprintf("  %s", exp.Description))
	}

	lines = append(lines, "\nEducation:")
	for _, edu := range user.Education {
		lines = append(lines, fmt.Sprintf("%s from %s - %s", edu.Degree, edu.Institution, edu.GraduationYear))
	}

	return strings.Join(lines, "\n")
}

// BuildResumePrompt constructs the prompt for the tailored resume request.
func BuildResumePrompt(user *types.UserProfile, job *types.JobDescription) string {
	template := prompts.MustGet("generation.json", "resume")
	return prompts.Format(template, map[string]string{
		"FormatInstructions": prompts.MustGet("generation.json", "resume-format"),
		"BaseResume":         BuildBaseResumeText(user),
		"JobDescription":     formatJobDescription(job),
	})
}

// BuildCoverLetterPrompt constructs the prompt for the cover letter request.
func BuildCoverLetterPrompt(user *types.UserProfile, job *types.JobDescription) string {
	template := prompts.MustGet("generation.json", "cover-letter")
	return prompts.Format(template, map[string]string{
		"FormatInstructions": prompts.MustGet("generation.json", "cover-letter-format"),
		"CandidateDetails":   formatCandidateDetails(user),
		"JobDescription":     formatJobDescription(job),
	})
}

// formatJobDescription renders the job description block shared by both prompts.
func formatJobDescription(job *types.JobDescription) string {
	notes := job.AdditionalNotes
	if notes == "" {
		notes = "N/A"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company Name: %s\n", job.CompanyName))
	sb.WriteString(fmt.Sprintf("Position Title: %s\n", job.PositionTitle))
	sb.WriteString(fmt.Sprintf("Responsibilities:\n%s\n", job.Responsibilities))
	sb.WriteString(fmt.Sprintf("Required Skills: %s\n", strings.Join(job.RequiredSkills, ", ")))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.JobLocation))
	sb.WriteString(fmt.Sprintf("Job Summary:\n%s\n", job.JobSummary))
	sb.WriteString(fmt.Sprintf("Additional Notes: %s\n", notes))
	return sb.String()
}

// formatCandidateDetails renders the candidate block for the cover letter prompt.
func formatCandidateDetails(user *types.UserProfile) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User's Name: %s\n", user.FullName))
	sb.WriteString(fmt.Sprintf("Professional Summary: %s\n", user.ProfessionalSummary))
	sb.WriteString(fmt.Sprintf("Key Skills: %s\n", strings.Join(user.Skills, ", ")))
	sb.WriteString("\nUser's Experiences:\n")
	for i, exp := range user.Experiences {
		sb.WriteString(fmt.Sprintf("%d. %s at %s (%s): %s\n", i+1, exp.Role, exp.Company, exp.Duration, exp.Description))
	}
	return sb.String()
}
