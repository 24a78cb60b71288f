package render

import (
	"strings"
	"testing"
)

func TestRender_PlainMarkdown(t *testing.T) {
	r := New()
	out := r.Render("Fix: define x")
	if !strings.Contains(out, "Fix: define x") {
		t.Error("rendered output should contain the response text")
	}
	if !strings.Contains(out, "#282a36") {
		t.Error("rendered output should carry the dark-theme stylesheet")
	}
}

func TestRender_Headings(t *testing.T) {
	r := New()
	out := r.Render("## Root cause\n\nUndefined variable.")
	if !strings.Contains(out, "<h2") {
		t.Errorf("expected heading markup in %q", out)
	}
}

func TestRender_FencedCodeBlock(t *testing.T) {
	r := New()
	out := r.Render("```python\nprint(x)\n```")
	if !strings.Contains(out, "<pre") {
		t.Error("fenced block should render to <pre>")
	}
	if !strings.Contains(out, "print") {
		t.Error("code content should survive rendering")
	}
	// inline styles, not classes: the dashboard page has no chroma stylesheet
	if strings.Contains(out, `class="chroma"`) && !strings.Contains(out, "style=") {
		t.Error("highlighting should emit inline styles")
	}
}

func TestRender_UnknownLanguageFallsBack(t *testing.T) {
	r := New()
	out := r.Render("```notalanguage\nfoo bar\n```")
	if !strings.Contains(out, "foo bar") {
		t.Error("unknown language should still render the code as text")
	}
}

func TestPage_WrapsFragment(t *testing.T) {
	r := New()
	out := r.Page("<h1>Analyzing error...</h1>")
	if !strings.Contains(out, "<h1>Analyzing error...</h1>") {
		t.Error("fragment should pass through unmodified")
	}
	if !strings.Contains(out, "errorlens-body") {
		t.Error("fragment should be wrapped in the template")
	}
}
