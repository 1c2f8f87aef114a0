// Package composing turns a CV record into a structured document for one
// selected template. Composers decide section presence and build
// template-agnostic content blocks; Assemble applies the template's order
// and layout variants; Document.HTML is the single escaping-aware
// emission step.
package composing

import (
	"html/template"

	"github.com/jonathan/cv-pdf-generator/internal/templates"
)

// Header is the always-present top region of the document. ContactItems
// holds only the contact fragments that are actually present, already in
// display form.
type Header struct {
	FullName     string
	Title        string
	ContactItems []string
	// Photo is a caller-prepared image reference (typically a data URI).
	// Typed as a URL so template emission does not reject data schemes.
	Photo template.URL
}

// Entry is one dated item in a repeated section: an experience role, an
// education record, a certificate, or an extracurricular engagement.
// Body carries pre-sanitized rich text and is emitted verbatim.
type Entry struct {
	Heading    string
	Subheading string
	DateLine   string
	Body       template.HTML
}

// SkillGroup is an optionally-labelled run of skill tags.
type SkillGroup struct {
	Label string
	Items []string
}

// LanguageItem is one language row with its display-capitalized level.
type LanguageItem struct {
	Name  string
	Level string
}

// Section is the composed, renderable content for one CV section. Exactly
// one payload group is populated, according to Kind. Columns is used only
// by the synthesized credentials section.
type Section struct {
	Kind      templates.SectionKind
	Title     string
	Text      string
	Groups    []SkillGroup
	Entries   []Entry
	Languages []LanguageItem
	Columns   []Section
}
