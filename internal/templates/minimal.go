package templates

import "html/template"

// minimalCSS is the centered, typographically quiet style: centered header
// and section titles, thin dividers between sections, and a single merged
// Skills section.
const minimalCSS = `
@page {
    size: A4;
    margin: 1.5cm;
}
body {
    font-family: Arial, sans-serif;
    font-size: 11pt;
    color: #333;
    line-height: 1.4;
    text-align: center;
}
.header {
    margin-bottom: 30px;
}
.photo {
    width: 90px;
    height: 90px;
    object-fit: cover;
    border-radius: 50%;
    margin-bottom: 10px;
}
.name {
    font-size: 24pt;
    font-weight: bold;
    color: #043e44;
    margin: 0;
    letter-spacing: 2px;
}
.title {
    font-size: 14pt;
    color: #03d27c;
    margin: 5px 0 20px 0;
    font-weight: 300;
}
.contact-info {
    margin-bottom: 20px;
    font-size: 10pt;
}
.section {
    margin-bottom: 30px;
    text-align: left;
}
.section-title {
    font-size: 12pt;
    font-weight: bold;
    color: #043e44;
    text-align: center;
    margin-bottom: 15px;
    text-transform: uppercase;
    letter-spacing: 1px;
}
.section-title:after {
    content: "";
    display: block;
    width: 50px;
    height: 1px;
    background-color: #03d27c;
    margin: 5px auto 15px;
}
.summary-text {
    text-align: center;
    max-width: 600px;
    margin: 0 auto;
}
.entry {
    margin-bottom: 20px;
}
.entry-header {
    display: flex;
    justify-content: space-between;
    align-items: flex-start;
    margin-bottom: 5px;
}
.entry-title {
    font-weight: bold;
    margin: 0;
}
.entry-subtitle {
    font-style: italic;
    margin: 0;
}
.date-range {
    font-size: 10pt;
    color: #666;
    text-align: right;
}
.skills-list {
    display: flex;
    flex-wrap: wrap;
    justify-content: center;
    gap: 10px;
}
.skill-item {
    background-color: #f5f5f5;
    padding: 5px 12px;
    border-radius: 20px;
    font-size: 10pt;
    border: 1px solid #eee;
}
.languages-row {
    display: flex;
    justify-content: center;
    flex-wrap: wrap;
    gap: 20px;
}
.language {
    margin-bottom: 5px;
    text-align: center;
}
.language-name {
    font-weight: bold;
    margin: 0;
}
.language-level {
    margin: 0;
    font-size: 10pt;
    color: #666;
}
.divider {
    height: 1px;
    background-color: #eee;
    margin: 30px 0;
}
`

const minimalMarkup = `<html>
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
{{range $i, $s := .Sections}}{{if $i}}<div class="divider"></div>
{{end}}{{template "section" $s}}{{end}}
</body>
</html>
{{define "section"}}<div class="section">
{{if .Title}}<div class="section-title">{{.Title}}</div>{{end}}
{{template "sectionBody" .}}</div>
{{end}}
{{define "sectionBody"}}{{if eq .Kind "summary"}}<p class="summary-text">{{.Text}}</p>
{{end}}{{range .Groups}}<div class="skills-list">{{range .Items}}<div class="skill-item">{{.}}</div>{{end}}</div>
{{end}}{{range .Entries}}<div class="entry">
<div class="entry-header">
<div>
<p class="entry-title">{{.Heading}}</p>
{{if .Subheading}}<p class="entry-subtitle">{{.Subheading}}</p>{{end}}
</div>
{{if .DateLine}}<p class="date-range">{{.DateLine}}</p>{{end}}
</div>
{{if .Body}}<div class="entry-body">{{.Body}}</div>{{end}}
</div>
{{end}}{{if .Languages}}<div class="languages-row">
{{range .Languages}}<div class="language">
<p class="language-name">{{.Name}}</p>
<p class="language-level">{{.Level}}</p>
</div>
{{end}}</div>
{{end}}{{end}}`

var minimalDefinition = &Definition{
	Name: "minimal",
	SectionOrder: []SectionKind{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionExtracurricular,
		SectionSkills,
		SectionLanguages,
		SectionCertificates,
	},
	Titles: map[SectionKind]string{
		SectionSummary:         "Profile",
		SectionExperience:      "Experience",
		SectionEducation:       "Education",
		SectionExtracurricular: "Extracurricular Activities",
		SectionSkills:          "Skills",
		SectionLanguages:       "Languages",
		SectionCertificates:    "Certifications",
	},
	Stylesheet:  minimalCSS,
	Markup:      template.Must(template.New("minimal").Parse(minimalMarkup)),
	MergeSkills: true,
}
