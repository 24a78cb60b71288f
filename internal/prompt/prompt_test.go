package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lenslabs/errorlens/internal/report"
)

func testReport() *report.ErrorReport {
	return &report.ErrorReport{
		FilePath:   "/tmp/a.py",
		SourceCode: "print(x)",
		Stderr:     "NameError: x undefined",
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"general", "dsa", "developer"} {
		if _, ok := ParseMode(valid); !ok {
			t.Errorf("mode %q should be valid", valid)
		}
	}
	for _, invalid := range []string{"", "General", "project", "dsa-tutor"} {
		if _, ok := ParseMode(invalid); ok {
			t.Errorf("mode %q should be invalid", invalid)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	r := testReport()
	for _, mode := range []Mode{ModeGeneral, ModeDSA} {
		if Build(r, mode) != Build(r, mode) {
			t.Errorf("mode %q: prompt is not deterministic", mode)
		}
	}
}

func TestBuild_GeneralEmbedsReport(t *testing.T) {
	p := Build(testReport(), ModeGeneral)
	if !strings.Contains(p, "print(x)") {
		t.Error("general prompt should contain the literal source code")
	}
	if !strings.Contains(p, "NameError: x undefined") {
		t.Error("general prompt should contain the literal stderr")
	}
	if !strings.Contains(p, "provide corrected code") {
		t.Error("general prompt should request corrected code")
	}
}

func TestBuild_DSANeverRequestsCorrectedCode(t *testing.T) {
	p := Build(testReport(), ModeDSA)
	if !strings.Contains(p, "DO NOT provide corrected code") {
		t.Error("dsa prompt should forbid corrected code")
	}
	if !strings.Contains(p, "print(x)") || !strings.Contains(p, "NameError: x undefined") {
		t.Error("dsa prompt should still embed code and stderr")
	}
}

func TestBuildProject(t *testing.T) {
	r := testReport()
	ctx := "--- File: a.py ---\nprint(x)\n\n"
	p := BuildProject(r, ctx)
	if !strings.Contains(p, "/tmp/a.py") {
		t.Error("project prompt should contain the report's file path")
	}
	if !strings.Contains(p, "NameError: x undefined") {
		t.Error("project prompt should contain the stderr")
	}
	if !strings.Contains(p, ctx) {
		t.Error("project prompt should embed the project context")
	}
}

func TestCollectProject_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "import lib")
	writeFile(t, filepath.Join(root, "node_modules"), "dep.js", "module.exports = {}")
	writeFile(t, filepath.Join(root, ".git"), "HEAD", "ref: refs/heads/main")

	ctx, count := CollectProject(root)
	if count != 1 {
		t.Errorf("expected 1 file, got %d", count)
	}
	if !strings.Contains(ctx, "--- File: main.py ---") {
		t.Error("context should contain main.py with its header")
	}
	if strings.Contains(ctx, "dep.js") || strings.Contains(ctx, "module.exports") {
		t.Error("node_modules content should be skipped")
	}
	if strings.Contains(ctx, "refs/heads") {
		t.Error(".git content should be skipped")
	}
}

func TestCollectProject_CapsAtMaxFiles(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < MaxProjectFiles+5; i++ {
		writeFile(t, root, fmt.Sprintf("file%02d.py", i), "pass")
	}

	_, count := CollectProject(root)
	if count != MaxProjectFiles {
		t.Errorf("expected %d files, got %d", MaxProjectFiles, count)
	}
}

func TestCollectProject_MissingRoot(t *testing.T) {
	ctx, count := CollectProject(filepath.Join(t.TempDir(), "does-not-exist"))
	if count != 0 || ctx != "" {
		t.Errorf("missing root should yield empty context, got %d files", count)
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
