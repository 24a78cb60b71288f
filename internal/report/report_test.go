package report

import "testing"

func TestParse_EmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\n"} {
		r, err := Parse([]byte(content))
		if err != nil {
			t.Errorf("content %q: unexpected error: %v", content, err)
		}
		if r != nil {
			t.Errorf("content %q: expected nil report, got %+v", content, r)
		}
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	r, err := Parse([]byte(`{"stderr": "unterminated`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if r != nil {
		t.Errorf("expected nil report on parse failure, got %+v", r)
	}
}

func TestParse_FullReport(t *testing.T) {
	payload := `{"stderr":"NameError: x undefined","source_code":"print(x)","file_path":"/tmp/a.py"}`
	r, err := Parse([]byte(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Stderr != "NameError: x undefined" {
		t.Errorf("stderr: got %q", r.Stderr)
	}
	if r.SourceCode != "print(x)" {
		t.Errorf("source_code: got %q", r.SourceCode)
	}
	if r.FilePath != "/tmp/a.py" {
		t.Errorf("file_path: got %q", r.FilePath)
	}
}

func TestParse_StderrOnly(t *testing.T) {
	r, err := Parse([]byte(`{"stderr":"segfault"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Stderr != "segfault" {
		t.Errorf("stderr: got %q", r.Stderr)
	}
	if r.FilePath != "" || r.SourceCode != "" {
		t.Errorf("optional fields should be empty, got %+v", r)
	}
}

func TestProjectRoot(t *testing.T) {
	r := &ErrorReport{FilePath: "/home/dev/proj/app.py"}
	if got := r.ProjectRoot(); got != "/home/dev/proj" {
		t.Errorf("project root: got %q", got)
	}

	empty := &ErrorReport{}
	if got := empty.ProjectRoot(); got != "" {
		t.Errorf("expected empty root without file path, got %q", got)
	}
}
