package rendering

import (
	"bytes"
	"context"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	gofpdf "github.com/lvillar/gofpdf"

	"github.com/jonathan/cv-pdf-generator/internal/composing"
)

// NativeRenderer writes the structured document straight to PDF without a
// browser. It is a deliberately plainer rendition: rich text is flattened
// to plain text and two-column regions render stacked. Useful where no
// Chromium is available.
type NativeRenderer struct {
	opts Options
}

// NewNativeRenderer constructs a native renderer with validated options.
func NewNativeRenderer(opts Options) (*NativeRenderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	opts.Engine = EngineNative
	return &NativeRenderer{opts: opts}, nil
}

// Palette shared with the stylesheets.
var (
	inkColor    = [3]int{4, 62, 68}
	accentColor = [3]int{3, 210, 124}
	mutedColor  = [3]int{102, 102, 102}
)

// RenderPDF walks the document tree into a single-column PDF.
func (r *NativeRenderer) RenderPDF(ctx context.Context, doc *composing.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &RenderError{Engine: EngineNative, Message: "context cancelled", Cause: err}
	}

	if r.opts.Verbose {
		log.Printf("[RENDER] native: %d sections (%s template)", len(doc.Sections), doc.Definition.Name)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Fixed metadata dates keep identical inputs producing identical bytes.
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetModificationDate(time.Unix(0, 0).UTC())
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	if doc.Header.FullName != "" {
		pdf.SetTitle(doc.Header.FullName, true)
	}
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	writeHeader(pdf, tr, doc.Header)
	for _, section := range doc.Sections {
		writeSection(pdf, tr, section)
	}

	if pdf.Err() {
		return nil, &RenderError{Engine: EngineNative, Message: "pdf construction failed", Cause: pdf.Error()}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Engine: EngineNative, Message: "pdf output failed", Cause: err}
	}
	return buf.Bytes(), nil
}

func contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	return pageW - lm - rm
}

func writeHeader(pdf *gofpdf.Fpdf, tr func(string) string, h composing.Header) {
	w := contentWidth(pdf)
	pdf.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(w, 10, tr(h.FullName), "", "L", false)
	if h.Title != "" {
		pdf.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
		pdf.SetFont("Helvetica", "", 14)
		pdf.MultiCell(w, 7, tr(h.Title), "", "L", false)
	}
	if len(h.ContactItems) > 0 {
		pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(w, 5, tr(strings.Join(h.ContactItems, " | ")), "", "L", false)
	}
	pdf.Ln(4)
}

func writeSection(pdf *gofpdf.Fpdf, tr func(string) string, section composing.Section) {
	if len(section.Columns) > 0 {
		for _, col := range section.Columns {
			writeSection(pdf, tr, col)
		}
		return
	}

	w := contentWidth(pdf)
	if section.Title != "" {
		pdf.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(w, 7, tr(section.Title), "", "L", false)
		lm, _, _, _ := pdf.GetMargins()
		pdf.SetDrawColor(accentColor[0], accentColor[1], accentColor[2])
		pdf.SetLineWidth(0.5)
		pdf.Line(lm, pdf.GetY(), lm+w, pdf.GetY())
		pdf.Ln(3)
	}

	if section.Text != "" {
		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(w, 5.5, tr(section.Text), "", "L", false)
		pdf.Ln(2)
	}

	for _, group := range section.Groups {
		if group.Label != "" {
			pdf.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(w, 5.5, tr(group.Label+":"), "", "L", false)
		}
		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(w, 5, tr(strings.Join(group.Items, "  •  ")), "", "L", false)
		pdf.Ln(2)
	}

	for _, entry := range section.Entries {
		pdf.SetTextColor(inkColor[0], inkColor[1], inkColor[2])
		pdf.SetFont("Helvetica", "B", 11)
		pdf.MultiCell(w, 5.5, tr(entry.Heading), "", "L", false)
		if entry.Subheading != "" {
			pdf.SetTextColor(accentColor[0], accentColor[1], accentColor[2])
			pdf.SetFont("Helvetica", "I", 11)
			pdf.MultiCell(w, 5.5, tr(entry.Subheading), "", "L", false)
		}
		if entry.DateLine != "" {
			pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(w, 5, tr(entry.DateLine), "", "L", false)
		}
		if entry.Body != "" {
			pdf.SetTextColor(51, 51, 51)
			pdf.SetFont("Helvetica", "", 10)
			for _, line := range flattenRichText(string(entry.Body)) {
				pdf.MultiCell(w, 5, tr(line), "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	for _, lang := range section.Languages {
		pdf.SetTextColor(51, 51, 51)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(w, 5.5, tr(lang.Name+" - "+lang.Level), "", "L", false)
	}

	pdf.Ln(4)
}

// flattenRichText reduces a trusted HTML fragment to plain text lines.
// List items become dashed lines; anything else collapses to its text.
func flattenRichText(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return []string{strings.TrimSpace(fragment)}
	}

	var lines []string
	items := doc.Find("li")
	if items.Length() > 0 {
		items.Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				lines = append(lines, "- "+text)
			}
		})
		return lines
	}

	if text := strings.TrimSpace(doc.Text()); text != "" {
		lines = append(lines, text)
	}
	return lines
}
