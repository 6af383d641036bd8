package export

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeRenderer prints HTML through a headless Chrome instance. Each render
// gets a fresh browser context so sessions never share state.
type ChromeRenderer struct {
	execPath string
}

// NewChromeRenderer builds a renderer. execPath may be empty, in which case
// chromedp locates the browser on PATH.
func NewChromeRenderer(execPath string) *ChromeRenderer {
	return &ChromeRenderer{execPath: execPath}
}

// Render writes the HTML to a temp file, navigates a headless browser to it,
// and prints the page.
func (r *ChromeRenderer) Render(ctx context.Context, html string, opts PageOptions) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Capture waits for the network-idle lifecycle event rather than DOM
	// readiness, so embedded resources like photos are loaded before print.
	idle := make(chan struct{})
	listenCtx, stopListening := context.WithCancel(browserCtx)
	defer stopListening()
	chromedp.ListenTarget(listenCtx, func(ev interface{}) {
		if e, ok := ev.(*page.EventLifecycleEvent); ok && e.Name == "networkIdle" {
			stopListening()
			close(idle)
		}
	})

	var pdf []byte
	err = chromedp.Run(browserCtx,
		page.Enable(),
		page.SetLifecycleEventsEnabled(true),
		chromedp.Navigate("file://"+htmlPath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			select {
			case <-idle:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(opts.PrintBackground).
				WithPaperWidth(opts.PaperWidthInches).
				WithPaperHeight(opts.PaperHeightInches).
				WithMarginTop(opts.MarginInches).
				WithMarginBottom(opts.MarginInches).
				WithMarginLeft(opts.MarginInches).
				WithMarginRight(opts.MarginInches).
				WithPreferCSSPageSize(opts.PreferCSSPageSize).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
