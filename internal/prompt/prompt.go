package prompt

import (
	"fmt"

	"github.com/lenslabs/errorlens/internal/report"
)

// Build constructs the single-file analysis prompt. It is a pure function
// of the report and mode: the same inputs always produce the same prompt.
func Build(r *report.ErrorReport, mode Mode) string {
	if mode == ModeDSA {
		return fmt.Sprintf(dsaTemplate, r.SourceCode, r.Stderr)
	}
	return fmt.Sprintf(generalTemplate, r.SourceCode, r.Stderr)
}

// BuildProject constructs the project-wide analysis prompt from the
// original error and the concatenated project context.
func BuildProject(r *report.ErrorReport, projectContext string) string {
	return fmt.Sprintf(projectTemplate, r.FilePath, r.Stderr, projectContext)
}
