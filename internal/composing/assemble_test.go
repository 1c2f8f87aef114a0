package composing

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-pdf-generator/internal/templates"
	"github.com/jonathan/cv-pdf-generator/internal/types"
)

func sampleRecord() *types.CVRecord {
	return &types.CVRecord{
		Personal: types.Personal{
			FirstName:         "Ada",
			LastName:          "Lovelace",
			ProfessionalTitle: "Software Engineer",
			Email:             "ada@example.com",
			Phone:             "555-0100",
			LinkedIn:          "linkedin.com/in/ada",
		},
		Summary: types.Summary{Text: "Engineer with a decade of experience."},
		Competencies: types.Competencies{
			TechnicalSkills: []string{"Go", "PostgreSQL"},
			SoftSkills:      []string{"Mentoring"},
		},
		Experience: []types.Experience{{
			OrganizationName: "Analytical Engines Ltd",
			RoleTitle:        "Principal Engineer",
			StartDate:        "2020-01-15",
			IsCurrent:        true,
			Description:      "<ul><li>Designed the compute pipeline</li></ul>",
		}},
		Certificates: []types.Certificate{{
			Name:               "Cloud Architect",
			IssuingInstitution: "Cert Org",
			DateAcquired:       "2022-05-01",
		}},
		Languages: []types.Language{{
			Name:             "English",
			ProficiencyLevel: "native",
		}},
		AdditionalSkills: []string{"Public speaking"},
	}
}

func TestAssembleDeterministic(t *testing.T) {
	for _, style := range templates.Styles() {
		t.Run(style, func(t *testing.T) {
			def := templates.Select(style)

			first, err := Assemble(sampleRecord(), def).HTML()
			require.NoError(t, err)
			second, err := Assemble(sampleRecord(), def).HTML()
			require.NoError(t, err)

			assert.Equal(t, first, second)
		})
	}
}

func TestAssembleOrdersSectionsPerDefinition(t *testing.T) {
	def := templates.Select("professional")
	doc := Assemble(sampleRecord(), def)

	var kinds []templates.SectionKind
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []templates.SectionKind{
		templates.SectionSummary,
		templates.SectionCompetencies,
		templates.SectionExperience,
		templates.SectionCertificates,
		templates.SectionLanguages,
		templates.SectionAdditionalSkills,
	}, kinds)
}

func TestAssembleAppliesDisplayTitles(t *testing.T) {
	def := templates.Select("professional")
	doc := Assemble(sampleRecord(), def)

	require.NotEmpty(t, doc.Sections)
	assert.Equal(t, "Professional Summary", doc.Sections[0].Title)
}

func TestAssembleOmitsEmptySections(t *testing.T) {
	rec := &types.CVRecord{
		Personal: types.Personal{FirstName: "Ada"},
		Experience: []types.Experience{{
			OrganizationName: "Analytical Engines Ltd",
			StartDate:        "2020-01-15",
			IsCurrent:        true,
		}},
	}
	doc := Assemble(rec, templates.Select("professional"))

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, templates.SectionExperience, doc.Sections[0].Kind)
}

func TestAssembleModernPairsCredentials(t *testing.T) {
	doc := Assemble(sampleRecord(), templates.Select("modern"))

	var credentials *Section
	for i := range doc.Sections {
		if doc.Sections[i].Kind == templates.SectionCredentials {
			credentials = &doc.Sections[i]
		}
		assert.NotEqual(t, templates.SectionCertificates, doc.Sections[i].Kind)
		assert.NotEqual(t, templates.SectionLanguages, doc.Sections[i].Kind)
	}
	require.NotNil(t, credentials)
	require.Len(t, credentials.Columns, 2)
	assert.Equal(t, templates.SectionCertificates, credentials.Columns[0].Kind)
	assert.Equal(t, "Certifications", credentials.Columns[0].Title)
	assert.Equal(t, templates.SectionLanguages, credentials.Columns[1].Kind)
}

func TestAssembleModernCredentialsSingleColumn(t *testing.T) {
	rec := sampleRecord()
	rec.Certificates = nil

	doc := Assemble(rec, templates.Select("modern"))

	var credentials *Section
	for i := range doc.Sections {
		if doc.Sections[i].Kind == templates.SectionCredentials {
			credentials = &doc.Sections[i]
		}
	}
	require.NotNil(t, credentials)
	require.Len(t, credentials.Columns, 1)
	assert.Equal(t, templates.SectionLanguages, credentials.Columns[0].Kind)
}

func TestAssembleMinimalMergesSkills(t *testing.T) {
	doc := Assemble(sampleRecord(), templates.Select("minimal"))

	var skills *Section
	for i := range doc.Sections {
		if doc.Sections[i].Kind == templates.SectionSkills {
			skills = &doc.Sections[i]
		}
		assert.NotEqual(t, templates.SectionCompetencies, doc.Sections[i].Kind)
		assert.NotEqual(t, templates.SectionAdditionalSkills, doc.Sections[i].Kind)
	}
	require.NotNil(t, skills)
	require.Len(t, skills.Groups, 1)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Mentoring", "Public speaking"}, skills.Groups[0].Items)
}

func TestDocumentHTMLContent(t *testing.T) {
	doc := Assemble(sampleRecord(), templates.Select("professional"))
	html, err := doc.HTML()
	require.NoError(t, err)

	q, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Contains(t, q.Find("h1").Text(), "Ada Lovelace")
	assert.Contains(t, q.Text(), "LinkedIn: linkedin.com/in/ada")
	assert.Contains(t, q.Text(), "Jan 2020 - Present")
	assert.Contains(t, q.Text(), "Acquired: May 2022")

	bullets := q.Find("li").Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
	assert.Contains(t, bullets, "Designed the compute pipeline")
}

func TestDocumentHTMLSingleExperienceRecord(t *testing.T) {
	rec := &types.CVRecord{
		Personal: types.Personal{FirstName: "Jane", LastName: "Doe"},
		Experience: []types.Experience{{
			OrganizationName: "Acme",
			RoleTitle:        "Engineer",
			StartDate:        "2020-01-01",
			IsCurrent:        true,
			Description:      "<p>Built things</p>",
		}},
	}

	doc := Assemble(rec, templates.Select("professional"))
	html, err := doc.HTML()
	require.NoError(t, err)

	q, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, 1, q.Find(".header").Length())
	assert.Equal(t, 1, q.Find(".section").Length(), "only the experience section renders")
	assert.Contains(t, q.Find(".date-range").Text(), "Jan 2020 - Present")
	assert.Contains(t, html, "<p>Built things</p>")
}

func TestDocumentHTMLEscapesPlainText(t *testing.T) {
	rec := sampleRecord()
	rec.Personal.ProfessionalTitle = `Engineer <script>alert("x")</script>`

	doc := Assemble(rec, templates.Select("professional"))
	html, err := doc.HTML()
	require.NoError(t, err)

	assert.NotContains(t, html, `<script>alert("x")</script>`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestDocumentHTMLPreservesRichText(t *testing.T) {
	rec := sampleRecord()
	rec.Experience[0].Description = "<p>Shipped <strong>major</strong> systems</p>"

	doc := Assemble(rec, templates.Select("professional"))
	html, err := doc.HTML()
	require.NoError(t, err)

	assert.Contains(t, html, "<p>Shipped <strong>major</strong> systems</p>")
}

func TestDocumentHTMLEmitsStylesheetOnce(t *testing.T) {
	for _, style := range templates.Styles() {
		t.Run(style, func(t *testing.T) {
			doc := Assemble(sampleRecord(), templates.Select(style))
			html, err := doc.HTML()
			require.NoError(t, err)
			assert.Equal(t, 1, strings.Count(html, "<style>"))
		})
	}
}
