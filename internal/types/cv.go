// Package types defines the normalized CV record consumed by the composing
// pipeline. The record is decoded once per render and treated as read-only.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexString is a string field that tolerates non-string JSON scalars.
// Date fields in incoming payloads have been observed as strings, numbers
// and null; decoding stringifies whatever arrives instead of failing.
type FlexString string

// UnmarshalJSON accepts any JSON scalar. Strings are taken as-is, null
// becomes empty, and everything else keeps its literal JSON form, trimmed.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*f = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(strings.TrimSpace(string(trimmed)))
	return nil
}

// String returns the underlying string value.
func (f FlexString) String() string { return string(f) }

// Personal holds identity and contact fields. Every field is optional;
// absent values decode to empty strings and degrade to empty display.
type Personal struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	ProfessionalTitle string `json:"professionalTitle"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	LinkedIn          string `json:"linkedin"`
	PhotoReference    string `json:"photoReference"`
}

// Summary is the optional narrative paragraph.
type Summary struct {
	Text string `json:"text"`
}

// Competencies holds the two order-preserving skill lists.
type Competencies struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
}

// Experience is one professional experience entry. Description is a
// pre-sanitized HTML fragment and is rendered verbatim.
type Experience struct {
	OrganizationName string     `json:"organizationName"`
	RoleTitle        string     `json:"roleTitle"`
	StartDate        FlexString `json:"startDate"`
	EndDate          FlexString `json:"endDate"`
	IsCurrent        bool       `json:"isCurrent"`
	Description      string     `json:"description"`
}

// Education is one education entry. Achievements is rich text.
type Education struct {
	InstitutionName string     `json:"institutionName"`
	FieldOfStudy    string     `json:"fieldOfStudy"`
	StartDate       FlexString `json:"startDate"`
	EndDate         FlexString `json:"endDate"`
	Achievements    string     `json:"achievements"`
}

// Certificate is one certification entry. Achievements is rich text.
type Certificate struct {
	Name               string     `json:"name"`
	IssuingInstitution string     `json:"issuingInstitution"`
	DateAcquired       FlexString `json:"dateAcquired"`
	ExpirationDate     FlexString `json:"expirationDate"`
	Achievements       string     `json:"achievements"`
}

// Language is one language row. ProficiencyLevel is free text and is
// display-capitalized at compose time.
type Language struct {
	Name             string `json:"name"`
	ProficiencyLevel string `json:"proficiencyLevel"`
}

// Extracurricular is structurally identical to Experience.
type Extracurricular struct {
	Organization string     `json:"organization"`
	Role         string     `json:"role"`
	StartDate    FlexString `json:"startDate"`
	EndDate      FlexString `json:"endDate"`
	IsCurrent    bool       `json:"isCurrent"`
	Description  string     `json:"description"`
}

// CVRecord is the root input for one render pass. List fields are never
// nil after Decode; unknown payload fields are ignored.
type CVRecord struct {
	Personal         Personal          `json:"personal"`
	Summary          Summary           `json:"summary"`
	Competencies     Competencies      `json:"competencies"`
	Experience       []Experience      `json:"experience"`
	Education        []Education       `json:"education"`
	Certificates     []Certificate     `json:"certificates"`
	Languages        []Language        `json:"languages"`
	Extracurricular  []Extracurricular `json:"extracurricular"`
	AdditionalSkills []string          `json:"additionalSkills"`
	TemplateStyle    string            `json:"templateStyle"`
}

// FullName joins first and last name with a single space, tolerating
// either side being empty.
func (r *CVRecord) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.Personal.FirstName) + " " + strings.TrimSpace(r.Personal.LastName))
}

// Decode parses a raw JSON payload into a CVRecord. Missing fields resolve
// to zero values and list fields to empty slices; the only failure mode is
// a payload that is not a valid JSON object at all.
func Decode(data []byte) (*CVRecord, error) {
	var rec CVRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse CV record: %w", err)
	}
	rec.ensureLists()
	return &rec, nil
}

// ensureLists replaces nil slices with empty ones so composers never see
// a nil list.
func (r *CVRecord) ensureLists() {
	if r.Competencies.TechnicalSkills == nil {
		r.Competencies.TechnicalSkills = []string{}
	}
	if r.Competencies.SoftSkills == nil {
		r.Competencies.SoftSkills = []string{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Certificates == nil {
		r.Certificates = []Certificate{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.Extracurricular == nil {
		r.Extracurricular = []Extracurricular{}
	}
	if r.AdditionalSkills == nil {
		r.AdditionalSkills = []string{}
	}
}
