// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-pdf-generator/internal/composing"
	"github.com/jonathan/cv-pdf-generator/internal/templates"
	"github.com/jonathan/cv-pdf-generator/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of the decoded CV record.
func (p *Printer) PrintRecord(rec *types.CVRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	name := rec.FullName()
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:            %s\n", name))
	if rec.Personal.ProfessionalTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:           %s\n", rec.Personal.ProfessionalTitle))
	}
	sb.WriteString(fmt.Sprintf("Experience:      %d entries\n", len(rec.Experience)))
	sb.WriteString(fmt.Sprintf("Education:       %d entries\n", len(rec.Education)))
	sb.WriteString(fmt.Sprintf("Certificates:    %d entries\n", len(rec.Certificates)))
	sb.WriteString(fmt.Sprintf("Languages:       %d entries\n", len(rec.Languages)))
	sb.WriteString(fmt.Sprintf("Extracurricular: %d entries\n", len(rec.Extracurricular)))
	skills := len(rec.Competencies.TechnicalSkills) + len(rec.Competencies.SoftSkills) + len(rec.AdditionalSkills)
	sb.WriteString(fmt.Sprintf("Skills:          %d total", skills))

	p.printBox("CV RECORD", sb.String())
}

// PrintTemplate outputs the resolved template definition summary.
func (p *Printer) PrintTemplate(requested string, def *templates.Definition) {
	if def == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Requested: %s\n", displayOrDefault(requested)))
	sb.WriteString(fmt.Sprintf("Resolved:  %s\n", def.Name))
	order := make([]string, len(def.SectionOrder))
	for i, kind := range def.SectionOrder {
		order[i] = string(kind)
	}
	sb.WriteString(fmt.Sprintf("Order:     %s", strings.Join(order, ", ")))

	p.printBox("TEMPLATE", sb.String())
}

// PrintDocument outputs a summary of the assembled document.
func (p *Printer) PrintDocument(doc *composing.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Template: %s\n", doc.Definition.Name))
	sb.WriteString(fmt.Sprintf("Sections: %d\n", len(doc.Sections)))
	for _, section := range doc.Sections {
		title := section.Title
		if title == "" {
			title = string(section.Kind)
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", title))
	}
	sb.WriteString(fmt.Sprintf("Contact items: %d", len(doc.Header.ContactItems)))

	p.printBox("DOCUMENT", sb.String())
}

// PrintRenderResult outputs where the PDF went and how big it is.
func (p *Printer) PrintRenderResult(path string, size int, engine string) {
	content := fmt.Sprintf("Engine: %s\nOutput: %s\nSize:   %d bytes", engine, path, size)
	p.printBox("RENDERED", content)
}

func displayOrDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
