// Package interview gathers the user profile and job description records
// through interactive prompts. Input and output streams are injected so the
// flows can be driven by scripted input in tests.
package interview

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Interviewer runs the interactive record-gathering flows.
type Interviewer struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates an Interviewer reading from in and prompting on out.
func New(in io.Reader, out io.Writer) *Interviewer {
	return &Interviewer{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Confirm prints a prompt and reads a y/n answer. Anything other than "y"
// (case-insensitive) counts as no.
func (iv *Interviewer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(iv.out, "%s (y/n)\n", prompt)
	answer, err := iv.readLine("> ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// GatherUserProfile interactively collects a new user profile.
func (iv *Interviewer) GatherUserProfile() (*types.UserProfile, error) {
	fmt.Fprintln(iv.out, "\n=== Gather User Profile Information ===")

	fullName, err := iv.readLine("Full Name: ")
	if err != nil {
		return nil, err
	}
	contactEmail, err := iv.readLine("Contact Email: ")
	if err != nil {
		return nil, err
	}
	phoneNumber, err := iv.readLine("Phone Number: ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(iv.out, "\nProfessional Summary (one or two sentences):")
	summary, err := iv.readLine("> ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(iv.out, "\nList some key skills separated by commas (e.g. Go, Data Analysis, Leadership):")
	rawSkills, err := iv.readLine("> ")
	if err != nil {
		return nil, err
	}

	var experiences []types.WorkExperience
	for {
		more, err := iv.Confirm("\nAdd a work experience?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		exp, err := iv.gatherExperience()
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *exp)
	}

	var education []types.Education
	for {
		more, err := iv.Confirm("\nAdd an education entry?")
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		edu, err := iv.gatherEducation()
		if err != nil {
			return nil, err
		}
		education = append(education, *edu)
	}

	return &types.UserProfile{
		FullName:            fullName,
		ContactEmail:        contactEmail,
		PhoneNumber:         phoneNumber,
		ProfessionalSummary: summary,
		Skills:              splitCSV(rawSkills),
		Experiences:         experiences,
		Education:           education,
	}, nil
}

// GatherJobDescription interactively collects a new job description.
func (iv *Interviewer) GatherJobDescription() (*types.JobDescription, error) {
	fmt.Fprintln(iv.out, "\n=== Gather Job Description ===")

	companyName, err := iv.readLine("Company Name: ")
	if err != nil {
		return nil, err
	}
	positionTitle, err := iv.readLine("Position Title: ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(iv.out, "\nProvide responsibilities for this role (multi-line; end with blank line):")
	responsibilities, err := iv.readMultiline()
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(iv.out, "\nList required skills separated by commas (e.g. React, Node.js, Team Management):")
	rawSkills, err := iv.readLine("> ")
	if err != nil {
		return nil, err
	}

	jobLocation, err := iv.readLine("Job Location: ")
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(iv.out, "\nProvide a quick job summary or desired qualifications (multi-line; end with blank line):")
	jobSummary, err := iv.readMultiline()
	if err != nil {
		return nil, err
	}

	additionalNotes, err := iv.readLine("\nAny additional notes about the position or application process? ")
	if err != nil {
		return nil, err
	}

	return &types.JobDescription{
		CompanyName:      companyName,
		PositionTitle:    positionTitle,
		Responsibilities: responsibilities,
		RequiredSkills:   splitCSV(rawSkills),
		JobLocation:      jobLocation,
		JobSummary:       jobSummary,
		AdditionalNotes:  additionalNotes,
	}, nil
}

func (iv *Interviewer) gatherExperience() (*types.WorkExperience, error) {
	company, err := iv.readLine("Company Name: ")
	if err != nil {
		return nil, err
	}
	role, err := iv.readLine("Role/Position: ")
	if err != nil {
		return nil, err
	}
	duration, err := iv.readLine("Duration (e.g., 2019-2021): ")
	if err != nil {
		return nil, err
	}
	description, err := iv.readLine("Brief Description of Responsibilities: ")
	if err != nil {
		return nil, err
	}

	return &types.WorkExperience{
		Company:     company,
		Role:        role,
		Duration:    duration,
		Description: description,
	}, nil
}

func (iv *Interviewer) gatherEducation() (*types.Education, error) {
	institution, err := iv.readLine("Institution Name: ")
	if err != nil {
		return nil, err
	}
	degree, err := iv.readLine("Degree (e.g. BSc in Computer Science): ")
	if err != nil {
		return nil, err
	}
	gradYear, err := iv.readLine("Graduation Year: ")
	if err != nil {
		return nil, err
	}

	return &types.Education{
		Institution:    institution,
		Degree:         degree,
		GraduationYear: gradYear,
	}, nil
}

// readLine prints a prompt and returns the next trimmed input line.
func (iv *Interviewer) readLine(prompt string) (string, error) {
	fmt.Fprint(iv.out, prompt)
	if !iv.scanner.Scan() {
		if err := iv.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(iv.scanner.Text()), nil
}

// readMultiline reads lines until a blank line and joins them with newlines.
func (iv *Interviewer) readMultiline() (string, error) {
	var lines []string
	for {
		line, err := iv.readLine("")
		if err != nil {
			return "", err
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// splitCSV splits a comma-separated value list, dropping empty entries.
func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
