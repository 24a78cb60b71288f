package analysis

import (
	"context"
	"sync"

	"github.com/lenslabs/errorlens/internal/prompt"
	"github.com/lenslabs/errorlens/internal/report"
	"github.com/rs/zerolog/log"
)

// Completer is satisfied by gemini.Client. Explain never fails; errors
// come back as displayable markdown.
type Completer interface {
	Explain(ctx context.Context, prompt string) string
}

// Surface is satisfied by dashboard.Server.
type Surface interface {
	Show(html string)
	Mode() prompt.Mode
}

// Renderer is satisfied by render.Renderer.
type Renderer interface {
	Render(markdown string) string
	Page(content string) string
}

const (
	idleHTML             = "<h1>Waiting for an error...</h1>"
	analyzingHTML        = "<h1>Analyzing error...</h1>"
	analyzingProjectHTML = "<h1>Project context analysis triggered...</h1>" +
		"<p>Running deep analysis with Gemini Pro. This may take a moment.</p>"
	noContextHTML = "<h1>No file context. Run the capture tool on a file first.</h1>"
)

// Runner turns detected reports into rendered analyses. A newer report
// supersedes any in-flight analysis: its context is cancelled and its
// result discarded, so the surface never shows results out of order.
type Runner struct {
	flash    Completer
	pro      Completer
	renderer Renderer
	surface  Surface

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRunner(flash, pro Completer, renderer Renderer, surface Surface) *Runner {
	return &Runner{
		flash:    flash,
		pro:      pro,
		renderer: renderer,
		surface:  surface,
	}
}

// ShowIdle puts the startup placeholder on the surface.
func (r *Runner) ShowIdle() {
	r.surface.Show(r.renderer.Page(idleHTML))
}

// Dispatch starts one analysis for rep on its own goroutine. The mode is
// read once, here, so a mid-flight mode change affects only later reports.
func (r *Runner) Dispatch(ctx context.Context, rep *report.ErrorReport) {
	mode := r.surface.Mode()

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	taskCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	if mode == prompt.ModeDeveloper {
		r.surface.Show(r.renderer.Page(analyzingProjectHTML))
	} else {
		r.surface.Show(r.renderer.Page(analyzingHTML))
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.analyze(taskCtx, rep, mode)
	}()
}

// Wait blocks until every dispatched analysis goroutine has returned.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) analyze(ctx context.Context, rep *report.ErrorReport, mode prompt.Mode) {
	var markdown string

	switch mode {
	case prompt.ModeDeveloper:
		root := rep.ProjectRoot()
		if root == "" {
			r.show(ctx, r.renderer.Page(noContextHTML))
			return
		}
		projectContext, files := prompt.CollectProject(root)
		log.Info().Int("files", files).Str("root", root).Msg("Collected project context")
		markdown = r.pro.Explain(ctx, prompt.BuildProject(rep, projectContext))
	default:
		markdown = r.flash.Explain(ctx, prompt.Build(rep, mode))
	}

	r.show(ctx, r.renderer.Render(markdown))
}

// show drops the result if a newer report superseded this analysis while
// it was in flight.
func (r *Runner) show(ctx context.Context, html string) {
	select {
	case <-ctx.Done():
		log.Debug().Msg("Discarding superseded analysis result")
	default:
		r.surface.Show(html)
	}
}
