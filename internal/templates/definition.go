// Package templates holds the fixed set of visual template definitions and
// the selection policy. A Definition is pure data: the section order, the
// per-section display titles, a scoped stylesheet, the markup skin, and
// layout variant flags. Composers never consult it; only the assembler does.
package templates

import "html/template"

// SectionKind identifies one renderable CV section.
type SectionKind string

// Section kinds. Credentials and Skills are synthesized by the assembler
// for layout variants; the rest map one-to-one onto record fields.
const (
	SectionSummary          SectionKind = "summary"
	SectionCompetencies     SectionKind = "competencies"
	SectionExperience       SectionKind = "experience"
	SectionEducation        SectionKind = "education"
	SectionCertificates     SectionKind = "certificates"
	SectionLanguages        SectionKind = "languages"
	SectionExtracurricular  SectionKind = "extracurricular"
	SectionAdditionalSkills SectionKind = "additionalSkills"
	SectionCredentials      SectionKind = "credentials"
	SectionSkills           SectionKind = "skills"
)

// DefaultStyle is the template used for empty or unrecognized style
// identifiers. Falling back is policy, not an error.
const DefaultStyle = "professional"

// Definition is a named bundle of section ordering, styling and layout
// variant flags for one visual template.
type Definition struct {
	Name         string
	SectionOrder []SectionKind
	Titles       map[SectionKind]string
	Stylesheet   string
	Markup       *template.Template

	// TwoColumnCredentials renders certificates and languages side by
	// side in one shared region instead of stacked sections.
	TwoColumnCredentials bool
	// MergeSkills collapses competencies and additional skills into a
	// single Skills section.
	MergeSkills bool
}

var registry = map[string]*Definition{
	"professional": professionalDefinition,
	"modern":       modernDefinition,
	"minimal":      minimalDefinition,
}

// Select resolves a style identifier to its Definition. Unrecognized or
// empty identifiers resolve to the professional definition.
func Select(styleID string) *Definition {
	if def, ok := registry[styleID]; ok {
		return def
	}
	return registry[DefaultStyle]
}

// Styles returns the registered style identifiers in stable order.
func Styles() []string {
	return []string{"professional", "modern", "minimal"}
}
