package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectKnownStyles(t *testing.T) {
	tests := []struct {
		styleID  string
		expected string
	}{
		{"professional", "professional"},
		{"modern", "modern"},
		{"minimal", "minimal"},
	}

	for _, tt := range tests {
		t.Run(tt.styleID, func(t *testing.T) {
			def := Select(tt.styleID)
			require.NotNil(t, def)
			assert.Equal(t, tt.expected, def.Name)
		})
	}
}

func TestSelectFallsBackToProfessional(t *testing.T) {
	professional := Select("professional")

	for _, styleID := range []string{"", "nonexistent-style", "PROFESSIONAL", "fancy"} {
		t.Run("style "+styleID, func(t *testing.T) {
			assert.Same(t, professional, Select(styleID))
		})
	}
}

func TestDefinitionsAreComplete(t *testing.T) {
	for _, style := range Styles() {
		t.Run(style, func(t *testing.T) {
			def := Select(style)
			require.NotNil(t, def.Markup, "markup must be parsed")
			assert.NotEmpty(t, def.Stylesheet)
			assert.NotEmpty(t, def.SectionOrder)

			for _, kind := range def.SectionOrder {
				if kind == SectionCredentials {
					// The credentials wrapper is untitled; its columns
					// carry the certificate and language titles.
					assert.NotEmpty(t, def.Titles[SectionCertificates])
					assert.NotEmpty(t, def.Titles[SectionLanguages])
					continue
				}
				assert.NotEmpty(t, def.Titles[kind], "missing title for %s", kind)
			}
		})
	}
}

func TestStylesheetsAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, style := range Styles() {
		def := Select(style)
		for other, css := range seen {
			assert.NotEqual(t, css, def.Stylesheet, "%s and %s share a stylesheet", style, other)
		}
		seen[style] = def.Stylesheet
	}
}

func TestVariantFlags(t *testing.T) {
	assert.False(t, Select("professional").TwoColumnCredentials)
	assert.False(t, Select("professional").MergeSkills)
	assert.True(t, Select("modern").TwoColumnCredentials)
	assert.True(t, Select("minimal").MergeSkills)
}
