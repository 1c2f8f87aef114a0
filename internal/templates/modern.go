package templates

import "html/template"

// modernCSS is the banner-header style: filled green header block, timeline
// markers on dated entries, pill-shaped skills, and a shared two-column
// region for certifications and languages.
const modernCSS = `
@page {
    size: A4;
    margin: 1cm;
}
body {
    font-family: Arial, sans-serif;
    font-size: 11pt;
    color: #333;
    line-height: 1.4;
    margin: 0;
    padding: 0;
}
.header {
    background-color: #03d27c;
    color: white;
    padding: 25px;
    margin-bottom: 20px;
}
.photo {
    float: right;
    width: 90px;
    height: 90px;
    object-fit: cover;
    border-radius: 50%;
}
.name {
    font-size: 24pt;
    font-weight: bold;
    margin: 0;
}
.title {
    font-size: 14pt;
    margin: 5px 0 10px 0;
    opacity: 0.9;
}
.contact-info {
    font-size: 10pt;
    opacity: 0.9;
}
.main-content {
    padding: 0 20px;
}
.section {
    margin-bottom: 20px;
}
.section-title {
    font-size: 14pt;
    font-weight: bold;
    color: #03d27c;
    margin-bottom: 10px;
}
.section-title:before {
    content: "";
    display: inline-block;
    width: 10px;
    height: 10px;
    background-color: #03d27c;
    margin-right: 10px;
}
.entry {
    position: relative;
    padding-left: 20px;
    margin-bottom: 15px;
}
.entry:before {
    content: "";
    position: absolute;
    left: 0;
    top: 0;
    bottom: 0;
    width: 2px;
    background-color: #eee;
}
.entry:after {
    content: "";
    position: absolute;
    left: -4px;
    top: 0;
    width: 10px;
    height: 10px;
    border-radius: 50%;
    background-color: #03d27c;
}
.company-name {
    font-weight: bold;
    margin-bottom: 0;
    color: #043e44;
}
.job-title {
    font-weight: bold;
    color: #03d27c;
}
.date-range {
    font-size: 10pt;
    color: #666;
    margin-bottom: 5px;
}
.responsibilities {
    margin-top: 5px;
}
.skill-category {
    color: #043e44;
    font-weight: bold;
    margin-bottom: 5px;
}
.skills-list {
    display: flex;
    flex-wrap: wrap;
    gap: 10px;
    margin-bottom: 10px;
}
.skill-item {
    background-color: #eee;
    padding: 5px 10px;
    border-radius: 15px;
    font-size: 10pt;
}
.columns {
    display: flex;
    gap: 20px;
}
.column {
    flex: 1;
}
.language {
    margin-bottom: 5px;
}
.language-name {
    font-weight: bold;
    color: #043e44;
}
.language-level {
    font-size: 10pt;
    color: #03d27c;
}
`

const modernMarkup = `<html>
<head>
<meta charset="UTF-8">
<style>{{.Stylesheet}}</style>
</head>
<body>
<div class="header">
{{if .Header.Photo}}<img class="photo" src="{{.Header.Photo}}"/>{{end}}
<h1 class="name">{{.Header.FullName}}</h1>
{{if .Header.Title}}<div class="title">{{.Header.Title}}</div>{{end}}
{{if .Header.ContactItems}}<div class="contact-info">{{range $i, $c := .Header.ContactItems}}{{if $i}} | {{end}}{{$c}}{{end}}</div>{{end}}
</div>
<div class="main-content">
{{range .Sections}}{{template "section" .}}{{end}}
</div>
</body>
</html>
{{define "section"}}{{if eq .Kind "credentials"}}<div class="section columns">
{{range .Columns}}<div class="column">
{{if .Title}}<div class="section-title">{{.Title}}</div>{{end}}
{{template "sectionBody" .}}</div>
{{end}}</div>
{{else}}<div class="section">
{{if .Title}}<div class="section-title">{{.Title}}</div>{{end}}
{{template "sectionBody" .}}</div>
{{end}}{{end}}
{{define "sectionBody"}}{{if eq .Kind "summary"}}<p>{{.Text}}</p>
{{end}}{{range .Groups}}{{if .Label}}<div class="skill-category">{{.Label}}</div>{{end}}<div class="skills-list">{{range .Items}}<div class="skill-item">{{.}}</div>{{end}}</div>
{{end}}{{range .Entries}}<div class="entry">
<div class="company-name">{{.Heading}}</div>
{{if .Subheading}}<div class="job-title">{{.Subheading}}</div>{{end}}
{{if .DateLine}}<div class="date-range">{{.DateLine}}</div>{{end}}
{{if .Body}}<div class="responsibilities">{{.Body}}</div>{{end}}
</div>
{{end}}{{range .Languages}}<div class="language"><span class="language-name">{{.Name}}</span> - <span class="language-level">{{.Level}}</span></div>
{{end}}{{end}}`

var modernDefinition = &Definition{
	Name: "modern",
	SectionOrder: []SectionKind{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionExtracurricular,
		SectionCompetencies,
		SectionCredentials,
		SectionAdditionalSkills,
	},
	Titles: map[SectionKind]string{
		SectionSummary:          "Professional Summary",
		SectionExperience:       "Experience",
		SectionEducation:        "Education",
		SectionExtracurricular:  "Extracurricular Activities",
		SectionCompetencies:     "Key Competencies",
		SectionCertificates:     "Certifications",
		SectionLanguages:        "Languages",
		SectionAdditionalSkills: "Additional Skills",
	},
	Stylesheet:           modernCSS,
	Markup:               template.Must(template.New("modern").Parse(modernMarkup)),
	TwoColumnCredentials: true,
}
