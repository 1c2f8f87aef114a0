package composing

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/cv-pdf-generator/internal/templates"
)

// Document is the assembled, immutable render tree for one CV: the chosen
// definition, the header region, and the ordered, filtered sections.
type Document struct {
	Definition *templates.Definition
	Header     Header
	Sections   []Section
}

// Stylesheet exposes the definition's CSS to the markup template without
// escaping. Each definition embeds exactly its own stylesheet; styles
// never leak between templates.
func (d *Document) Stylesheet() template.CSS {
	return template.CSS(d.Definition.Stylesheet)
}

// HTML serializes the document by executing the definition's markup
// template. All plain-text fields pass through contextual escaping here;
// rich-text fields arrive as template.HTML and are emitted verbatim.
// Output is byte-identical for identical inputs.
func (d *Document) HTML() (string, error) {
	var sb strings.Builder
	if err := d.Definition.Markup.Execute(&sb, d); err != nil {
		return "", fmt.Errorf("failed to emit %s document: %w", d.Definition.Name, err)
	}
	return sb.String(), nil
}
