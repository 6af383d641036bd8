package export

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// PageOptions controls the printed page geometry.
type PageOptions struct {
	PaperWidthInches  float64
	PaperHeightInches float64
	MarginInches      float64
	PrintBackground   bool
	PreferCSSPageSize bool
}

// DefaultPageOptions returns A4 geometry with half-inch margins, matching the
// 816x1056px layout the templates are designed against.
func DefaultPageOptions() PageOptions {
	return PageOptions{
		PaperWidthInches:  8.27,
		PaperHeightInches: 11.7,
		MarginInches:      0.5,
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// Renderer converts a standalone HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string, opts PageOptions) ([]byte, error)
}

// Result is a finished export.
type Result struct {
	PDF      []byte
	Filename string
}

const (
	defaultTimeout       = 30 * time.Second
	defaultMaxConcurrent = 2
)

// Exporter drives the PDF pipeline. Concurrent exports are bounded so a burst
// of requests cannot spawn an unbounded number of browser sessions.
type Exporter struct {
	renderer Renderer
	page     PageOptions
	timeout  time.Duration
	sem      *semaphore.Weighted
	now      func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithTimeout overrides the per-export render deadline.
func WithTimeout(d time.Duration) Option {
	return func(e *Exporter) { e.timeout = d }
}

// WithMaxConcurrent bounds the number of simultaneous browser sessions.
func WithMaxConcurrent(n int64) Option {
	return func(e *Exporter) { e.sem = semaphore.NewWeighted(n) }
}

// WithPageOptions overrides the printed page geometry.
func WithPageOptions(p PageOptions) Option {
	return func(e *Exporter) { e.page = p }
}

// WithClock overrides the time source used for export filenames.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// NewExporter builds an Exporter around the given renderer.
func NewExporter(r Renderer, opts ...Option) *Exporter {
	e := &Exporter{
		renderer: r,
		page:     DefaultPageOptions(),
		timeout:  defaultTimeout,
		sem:      semaphore.NewWeighted(defaultMaxConcurrent),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export resolves the snapshot through the HTML target and renders it to PDF.
// The snapshot is taken by value so a concurrent edit session cannot change
// the document mid-render.
func (e *Exporter) Export(ctx context.Context, doc types.Document, sections []types.Section, styles types.StyleSettings) (*Result, error) {
	html, err := e.StaticHTML(doc, sections, styles)
	if err != nil {
		return nil, err
	}

	if err := e.sem.Acquire(ctx, 1); err != nil {
		return nil, &RenderServiceError{Message: "waiting for a browser slot", Cause: err}
	}
	defer e.sem.Release(1)

	renderCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	pdf, err := e.renderer.Render(renderCtx, html, e.page)
	if err != nil {
		return nil, &RenderServiceError{Message: "failed to render PDF", Cause: err}
	}

	return &Result{PDF: pdf, Filename: Filename(e.now())}, nil
}

// StaticHTML produces the HTML document the PDF pipeline prints. It is also
// the fallback payload when the browser pipeline is unavailable: clients load
// it directly and use the native print dialog.
func (e *Exporter) StaticHTML(doc types.Document, sections []types.Section, styles types.StyleSettings) (string, error) {
	blocks := layout.Resolve(doc, sections)
	return rendering.RenderHTML(blocks, styles)
}

// Filename returns the download name for an export on the given day.
func Filename(t time.Time) string {
	return fmt.Sprintf("resume-%s.pdf", t.Format("2006-01-02"))
}
