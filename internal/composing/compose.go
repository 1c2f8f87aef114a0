package composing

import (
	"html/template"
	"strings"

	"github.com/jonathan/cv-pdf-generator/internal/normalize"
	"github.com/jonathan/cv-pdf-generator/internal/templates"
	"github.com/jonathan/cv-pdf-generator/internal/types"
)

// Composers follow one rule uniformly: a section whose underlying data is
// empty is omitted entirely, never rendered as an empty shell. Each
// composer returns its Section and whether the section is present.
// Sections come back untitled; the assembler applies the template's
// display titles.

// ComposeHeader builds the always-present header region. Contact fragments
// are independently optional.
func ComposeHeader(rec *types.CVRecord) Header {
	h := Header{
		FullName: rec.FullName(),
		Title:    strings.TrimSpace(rec.Personal.ProfessionalTitle),
		Photo:    template.URL(strings.TrimSpace(rec.Personal.PhotoReference)),
	}
	if email := strings.TrimSpace(rec.Personal.Email); email != "" {
		h.ContactItems = append(h.ContactItems, email)
	}
	if phone := strings.TrimSpace(rec.Personal.Phone); phone != "" {
		h.ContactItems = append(h.ContactItems, phone)
	}
	if linkedin := strings.TrimSpace(rec.Personal.LinkedIn); linkedin != "" {
		h.ContactItems = append(h.ContactItems, "LinkedIn: "+linkedin)
	}
	return h
}

// ComposeSummary renders a single paragraph iff the summary text is
// non-empty.
func ComposeSummary(rec *types.CVRecord) (Section, bool) {
	text := strings.TrimSpace(rec.Summary.Text)
	if text == "" {
		return Section{}, false
	}
	return Section{Kind: templates.SectionSummary, Text: text}, true
}

// ComposeCompetencies builds the technical and soft skill groups. Either
// sub-list may be absent on its own; the section is absent when both are.
func ComposeCompetencies(rec *types.CVRecord) (Section, bool) {
	var groups []SkillGroup
	if items := cleanSkills(rec.Competencies.TechnicalSkills); len(items) > 0 {
		groups = append(groups, SkillGroup{Label: "Technical Skills", Items: items})
	}
	if items := cleanSkills(rec.Competencies.SoftSkills); len(items) > 0 {
		groups = append(groups, SkillGroup{Label: "Soft Skills", Items: items})
	}
	if len(groups) == 0 {
		return Section{}, false
	}
	return Section{Kind: templates.SectionCompetencies, Groups: groups}, true
}

// ComposeExperience builds one entry per experience item, in caller order.
// A current role always displays "Present" as its end date, even when an
// end date value is present.
func ComposeExperience(rec *types.CVRecord) (Section, bool) {
	if len(rec.Experience) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, 0, len(rec.Experience))
	for _, exp := range rec.Experience {
		entries = append(entries, Entry{
			Heading:    exp.OrganizationName,
			Subheading: exp.RoleTitle,
			DateLine:   normalize.DateRange(exp.StartDate.String(), exp.EndDate.String(), exp.IsCurrent),
			Body:       richText(exp.Description),
		})
	}
	return Section{Kind: templates.SectionExperience, Entries: entries}, true
}

// ComposeEducation builds one entry per education item; the achievements
// sub-block appears only when present.
func ComposeEducation(rec *types.CVRecord) (Section, bool) {
	if len(rec.Education) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, 0, len(rec.Education))
	for _, edu := range rec.Education {
		entries = append(entries, Entry{
			Heading:    edu.InstitutionName,
			Subheading: edu.FieldOfStudy,
			DateLine:   normalize.DateRange(edu.StartDate.String(), edu.EndDate.String(), false),
			Body:       richText(edu.Achievements),
		})
	}
	return Section{Kind: templates.SectionEducation, Entries: entries}, true
}

// ComposeCertificates builds one entry per certificate. The expiry suffix
// is appended only when an expiration date is present.
func ComposeCertificates(rec *types.CVRecord) (Section, bool) {
	if len(rec.Certificates) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, 0, len(rec.Certificates))
	for _, cert := range rec.Certificates {
		dateLine := "Acquired: " + normalize.Date(cert.DateAcquired.String(), false)
		if expires := normalize.Date(cert.ExpirationDate.String(), false); expires != "" {
			dateLine += " - Expires: " + expires
		}
		entries = append(entries, Entry{
			Heading:    cert.Name,
			Subheading: cert.IssuingInstitution,
			DateLine:   dateLine,
			Body:       richText(cert.Achievements),
		})
	}
	return Section{Kind: templates.SectionCertificates, Entries: entries}, true
}

// ComposeLanguages builds one row per language with the proficiency level
// display-capitalized.
func ComposeLanguages(rec *types.CVRecord) (Section, bool) {
	if len(rec.Languages) == 0 {
		return Section{}, false
	}
	items := make([]LanguageItem, 0, len(rec.Languages))
	for _, lang := range rec.Languages {
		items = append(items, LanguageItem{
			Name:  lang.Name,
			Level: normalize.Capitalize(lang.ProficiencyLevel),
		})
	}
	return Section{Kind: templates.SectionLanguages, Languages: items}, true
}

// ComposeExtracurricular mirrors ComposeExperience over the
// extracurricular list.
func ComposeExtracurricular(rec *types.CVRecord) (Section, bool) {
	if len(rec.Extracurricular) == 0 {
		return Section{}, false
	}
	entries := make([]Entry, 0, len(rec.Extracurricular))
	for _, extra := range rec.Extracurricular {
		entries = append(entries, Entry{
			Heading:    extra.Organization,
			Subheading: extra.Role,
			DateLine:   normalize.DateRange(extra.StartDate.String(), extra.EndDate.String(), extra.IsCurrent),
			Body:       richText(extra.Description),
		})
	}
	return Section{Kind: templates.SectionExtracurricular, Entries: entries}, true
}

// ComposeAdditionalSkills builds a single unlabelled skill group.
func ComposeAdditionalSkills(rec *types.CVRecord) (Section, bool) {
	items := cleanSkills(rec.AdditionalSkills)
	if len(items) == 0 {
		return Section{}, false
	}
	return Section{
		Kind:   templates.SectionAdditionalSkills,
		Groups: []SkillGroup{{Items: items}},
	}, true
}

// cleanSkills trims entries and drops blanks while preserving order.
func cleanSkills(raw []string) []string {
	items := make([]string, 0, len(raw))
	for _, s := range raw {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// richText marks a pre-sanitized HTML fragment for verbatim emission.
// This is the one trust boundary in the pipeline: descriptions and
// achievements are assumed sanitized upstream; everything else is escaped
// by the markup templates.
func richText(s string) template.HTML {
	return template.HTML(strings.TrimSpace(s))
}
