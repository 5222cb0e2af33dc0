// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintUserProfile outputs a human-readable summary of the active profile.
func (p *Printer) PrintUserProfile(profile *types.UserProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", profile.FullName))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", profile.ContactEmail))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", profile.PhoneNumber))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	if len(profile.Experiences) > 0 {
		sb.WriteString("\nExperience:\n")
		count := min(len(profile.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experiences[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s (%s)\n", exp.Role, exp.Company, exp.Duration))
		}
		if len(profile.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experiences)-maxItemsToShow))
		}
	}

	if len(profile.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range profile.Education {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", edu.Degree, edu.Institution, edu.GraduationYear))
		}
	}

	p.printBox("User Profile", strings.TrimRight(sb.String(), "\n"))
}

// PrintJobDescription outputs a human-readable summary of the active job description.
func (p *Printer) PrintJobDescription(job *types.JobDescription) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.CompanyName))
	sb.WriteString(fmt.Sprintf("Role:     %s\n", job.PositionTitle))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.JobLocation))

	if len(job.RequiredSkills) > 0 {
		sb.WriteString("\nRequired Skills:\n")
		count := min(len(job.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.RequiredSkills[i]))
		}
		if len(job.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.RequiredSkills)-maxItemsToShow))
		}
	}

	if job.JobSummary != "" {
		sb.WriteString("\nSummary:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", job.JobSummary))
	}

	p.printBox("Job Description", strings.TrimRight(sb.String(), "\n"))
}
