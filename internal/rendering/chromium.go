package rendering

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/cv-pdf-generator/internal/composing"
)

// ChromiumRenderer prints the document's HTML to PDF with a headless
// Chromium via the DevTools protocol. Requires Chrome/Chromium on the
// system; set Options.ChromePath for non-default installs.
type ChromiumRenderer struct {
	opts Options
}

// NewChromiumRenderer constructs a Chromium renderer with validated options.
func NewChromiumRenderer(opts Options) (*ChromiumRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	opts.Engine = EngineChromium
	return &ChromiumRenderer{opts: opts}, nil
}

// RenderPDF serializes the document and prints it to PDF bytes.
func (r *ChromiumRenderer) RenderPDF(ctx context.Context, doc *composing.Document) ([]byte, error) {
	html, err := doc.HTML()
	if err != nil {
		return nil, &RenderError{Engine: EngineChromium, Message: "document emission failed", Cause: err}
	}

	if r.opts.Verbose {
		log.Printf("[RENDER] chromium: printing %d bytes of markup (%s template)", len(html), doc.Definition.Name)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(r.opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.opts.Timeout)
	defer cancel()

	// Chromium needs a navigable URL, so the markup goes through a
	// temporary file.
	tmpDir, err := os.MkdirTemp("", "cvgen-")
	if err != nil {
		return nil, &RenderError{Engine: EngineChromium, Message: "failed to create temp dir", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Engine: EngineChromium, Message: "failed to write markup file", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(r.opts.PaperWidth).
				WithPaperHeight(r.opts.PaperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Engine: EngineChromium, Message: "print to PDF failed", Cause: err}
	}

	if r.opts.Verbose {
		log.Printf("[RENDER] chromium: produced %d PDF bytes", len(pdf))
	}

	return pdf, nil
}
