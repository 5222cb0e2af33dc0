package generator

import (
	"fmt"
	"time"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Output file naming. Two generations within the same second for the same
// document kind overwrite each other; second precision is the only guard.
const (
	// FilePrefix is the fixed prefix for generated document files.
	FilePrefix = "job_app"
	// TimestampLayout is the second-precision timestamp embedded in filenames.
	TimestampLayout = "20060102_150405"
)

// DocumentFilename returns the output filename for a document kind at a
// generation time, e.g. "job_app_resume_20240115_143022.txt".
func DocumentFilename(kind types.DocumentKind, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.txt", FilePrefix, kind, at.Format(TimestampLayout))
}
