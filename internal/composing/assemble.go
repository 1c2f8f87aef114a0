package composing

import (
	"github.com/jonathan/cv-pdf-generator/internal/templates"
	"github.com/jonathan/cv-pdf-generator/internal/types"
)

// Assemble runs every composer over the record, applies the definition's
// layout variants, and returns the ordered document. The result is fully
// determined by (record, definition): no timestamps, generated IDs, or
// map-order effects reach the output.
func Assemble(rec *types.CVRecord, def *templates.Definition) *Document {
	composed := make(map[templates.SectionKind]Section, 8)

	if s, ok := ComposeSummary(rec); ok {
		composed[templates.SectionSummary] = s
	}
	if s, ok := ComposeCompetencies(rec); ok {
		composed[templates.SectionCompetencies] = s
	}
	if s, ok := ComposeExperience(rec); ok {
		composed[templates.SectionExperience] = s
	}
	if s, ok := ComposeEducation(rec); ok {
		composed[templates.SectionEducation] = s
	}
	if s, ok := ComposeCertificates(rec); ok {
		composed[templates.SectionCertificates] = s
	}
	if s, ok := ComposeLanguages(rec); ok {
		composed[templates.SectionLanguages] = s
	}
	if s, ok := ComposeExtracurricular(rec); ok {
		composed[templates.SectionExtracurricular] = s
	}
	if s, ok := ComposeAdditionalSkills(rec); ok {
		composed[templates.SectionAdditionalSkills] = s
	}

	if def.MergeSkills {
		mergeSkills(composed)
	}
	if def.TwoColumnCredentials {
		pairCredentials(composed, def)
	}

	doc := &Document{
		Definition: def,
		Header:     ComposeHeader(rec),
	}
	for _, kind := range def.SectionOrder {
		section, ok := composed[kind]
		if !ok {
			continue
		}
		if section.Title == "" {
			section.Title = def.Titles[kind]
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc
}

// mergeSkills collapses competencies and additional skills into one
// unlabelled Skills section, preserving technical, soft, additional order.
func mergeSkills(composed map[templates.SectionKind]Section) {
	var items []string
	if s, ok := composed[templates.SectionCompetencies]; ok {
		for _, g := range s.Groups {
			items = append(items, g.Items...)
		}
		delete(composed, templates.SectionCompetencies)
	}
	if s, ok := composed[templates.SectionAdditionalSkills]; ok {
		for _, g := range s.Groups {
			items = append(items, g.Items...)
		}
		delete(composed, templates.SectionAdditionalSkills)
	}
	if len(items) == 0 {
		return
	}
	composed[templates.SectionSkills] = Section{
		Kind:   templates.SectionSkills,
		Groups: []SkillGroup{{Items: items}},
	}
}

// pairCredentials wraps certificates and languages into one side-by-side
// region. Either side may be absent; the region is absent when both are.
// Column titles are applied here since the wrapper itself is untitled.
func pairCredentials(composed map[templates.SectionKind]Section, def *templates.Definition) {
	var columns []Section
	if s, ok := composed[templates.SectionCertificates]; ok {
		s.Title = def.Titles[templates.SectionCertificates]
		columns = append(columns, s)
		delete(composed, templates.SectionCertificates)
	}
	if s, ok := composed[templates.SectionLanguages]; ok {
		s.Title = def.Titles[templates.SectionLanguages]
		columns = append(columns, s)
		delete(composed, templates.SectionLanguages)
	}
	if len(columns) == 0 {
		return
	}
	composed[templates.SectionCredentials] = Section{
		Kind:    templates.SectionCredentials,
		Columns: columns,
	}
}
