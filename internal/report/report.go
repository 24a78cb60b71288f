package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
)

// ErrorReport is one error event written to the log store by the external
// capture tool. Only the most recent write matters; there is no history.
type ErrorReport struct {
	FilePath   string `json:"file_path"`
	SourceCode string `json:"source_code"`
	Stderr     string `json:"stderr"`
}

// Parse decodes a log store payload. Empty or whitespace-only content is
// not an error: it returns (nil, nil) so callers can treat it as a no-op.
func Parse(data []byte) (*ErrorReport, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var r ErrorReport
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse error report: %w", err)
	}

	return &r, nil
}

// ProjectRoot returns the directory containing the reported file, or ""
// when the report carries no file path.
func (r *ErrorReport) ProjectRoot() string {
	if r.FilePath == "" {
		return ""
	}
	return filepath.Dir(r.FilePath)
}
