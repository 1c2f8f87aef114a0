package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected string
	}{
		{"String value", `{"v": "2023-03-15"}`, "2023-03-15"},
		{"Null becomes empty", `{"v": null}`, ""},
		{"Integer stringified", `{"v": 2023}`, "2023"},
		{"Float stringified", `{"v": 2023.5}`, "2023.5"},
		{"Boolean stringified", `{"v": true}`, "true"},
		{"Absent field stays empty", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var holder struct {
				V FlexString `json:"v"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &holder))
			assert.Equal(t, tt.expected, holder.V.String())
		})
	}
}

func TestDecodeEmptyObject(t *testing.T) {
	rec, err := Decode([]byte(`{}`))
	require.NoError(t, err)

	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Certificates)
	assert.NotNil(t, rec.Languages)
	assert.NotNil(t, rec.Extracurricular)
	assert.NotNil(t, rec.AdditionalSkills)
	assert.NotNil(t, rec.Competencies.TechnicalSkills)
	assert.NotNil(t, rec.Competencies.SoftSkills)

	assert.Empty(t, rec.Personal.FirstName)
	assert.Empty(t, rec.Summary.Text)
	assert.Empty(t, rec.TemplateStyle)
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	rec, err := Decode([]byte(`{"personal": {"firstName": "Ada"}, "somethingElse": {"nested": true}}`))
	require.NoError(t, err)
	assert.Equal(t, "Ada", rec.Personal.FirstName)
}

func TestDecodeMalformedRoot(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"Not JSON", `{{{`},
		{"Root is array", `[1, 2, 3]`},
		{"Root is string", `"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestDecodeFullRecord(t *testing.T) {
	payload := `{
		"personal": {"firstName": "Ada", "lastName": "Lovelace", "email": "ada@example.com"},
		"summary": {"text": "Analytical engine programmer."},
		"competencies": {"technicalSkills": ["Mathematics"], "softSkills": ["Persistence"]},
		"experience": [{
			"organizationName": "Analytical Engines Ltd",
			"roleTitle": "Programmer",
			"startDate": "1842-01-01",
			"endDate": 1843,
			"isCurrent": false,
			"description": "<p>Wrote the first program.</p>"
		}],
		"languages": [{"name": "English", "proficiencyLevel": "native"}],
		"templateStyle": "modern"
	}`

	rec, err := Decode([]byte(payload))
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", rec.FullName())
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "1842-01-01", rec.Experience[0].StartDate.String())
	assert.Equal(t, "1843", rec.Experience[0].EndDate.String())
	assert.Equal(t, "modern", rec.TemplateStyle)
	assert.Empty(t, rec.Certificates)
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"Both parts", "Ada", "Lovelace", "Ada Lovelace"},
		{"First only", "Ada", "", "Ada"},
		{"Last only", "", "Lovelace", "Lovelace"},
		{"Neither", "", "", ""},
		{"Untrimmed input", " Ada ", " Lovelace ", "Ada Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := CVRecord{Personal: Personal{FirstName: tt.first, LastName: tt.last}}
			assert.Equal(t, tt.expected, rec.FullName())
		})
	}
}
