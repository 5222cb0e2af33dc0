package interview

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

func TestGatherUserProfile(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe",
		"jane@x.com",
		"555-0100",
		"Backend engineer with SRE experience.",
		"Go, SQL, Leadership",
		"y",
		"Acme",
		"Engineer",
		"2019-2021",
		"Built billing services",
		"n",
		"y",
		"State U",
		"BSc in Computer Science",
		"2018",
		"n",
	}, "\n") + "\n"

	var out bytes.Buffer
	iv := New(strings.NewReader(input), &out)

	profile, err := iv.GatherUserProfile()
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "jane@x.com", profile.ContactEmail)
	assert.Equal(t, "555-0100", profile.PhoneNumber)
	assert.Equal(t, "Backend engineer with SRE experience.", profile.ProfessionalSummary)
	assert.Equal(t, []string{"Go", "SQL", "Leadership"}, profile.Skills)

	require.Len(t, profile.Experiences, 1)
	assert.Equal(t, types.WorkExperience{
		Company:     "Acme",
		Role:        "Engineer",
		Duration:    "2019-2021",
		Description: "Built billing services",
	}, profile.Experiences[0])

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "State U", profile.Education[0].Institution)

	assert.Contains(t, out.String(), "Gather User Profile Information")
}

func TestGatherUserProfile_NoExperiences(t *testing.T) {
	input := "Jane Doe\njane@x.com\n555-0100\nSummary\nGo\nn\nn\n"

	iv := New(strings.NewReader(input), io.Discard)
	profile, err := iv.GatherUserProfile()
	require.NoError(t, err)

	assert.Empty(t, profile.Experiences)
	assert.Empty(t, profile.Education)
	assert.Equal(t, []string{"Go"}, profile.Skills)
}

func TestGatherJobDescription(t *testing.T) {
	input := strings.Join([]string{
		"Initech",
		"Backend Engineer",
		"Design billing services",
		"Operate them in production",
		"",
		"Go, Postgres",
		"Remote",
		"Own the billing platform end to end",
		"",
		"Apply via the careers portal",
	}, "\n") + "\n"

	iv := New(strings.NewReader(input), io.Discard)
	job, err := iv.GatherJobDescription()
	require.NoError(t, err)

	assert.Equal(t, "Initech", job.CompanyName)
	assert.Equal(t, "Backend Engineer", job.PositionTitle)
	assert.Equal(t, "Design billing services\nOperate them in production", job.Responsibilities)
	assert.Equal(t, []string{"Go", "Postgres"}, job.RequiredSkills)
	assert.Equal(t, "Remote", job.JobLocation)
	assert.Equal(t, "Own the billing platform end to end", job.JobSummary)
	assert.Equal(t, "Apply via the careers portal", job.AdditionalNotes)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"yes\n", false},
		{"\n", false},
	}

	for _, tt := range tests {
		iv := New(strings.NewReader(tt.input), io.Discard)
		got, err := iv.Confirm("Load existing profile?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestReadLine_EOF(t *testing.T) {
	iv := New(strings.NewReader(""), io.Discard)

	_, err := iv.GatherUserProfile()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL"}, splitCSV("Go, SQL"))
	assert.Equal(t, []string{"Go"}, splitCSV(" Go ,, "))
	assert.Empty(t, splitCSV(""))
}
