package templates

import "html/template"

// professionalCSS is the classic single-column style: dark headings with a
// green accent rule under each section title.
const professionalCSS = `
@page {
    size: A4;
    margin: 1.5cm;
}
body {
    font-family: 'Arial', 'Helvetica', sans-serif;
    font-size: 11pt;
    color: #043e44;
    line-height: 1.5;
    margin: 0;
    padding: 0;
}
.header {
    margin-bottom: 20px;
}
.photo {
    float: right;
    width: 90px;
    height: 90px;
    object-fit: cover;
    border-radius: 4px;
}
.name {
    font-size: 24pt;
    font-weight: bold;
    color: #043e44;
    margin: 0;
    padding: 0;
}
.title {
    font-size: 14pt;
    color: #03d27c;
    margin: 5px 0 10px 0;
}
.contact-info {
    margin: 5px 0;
    font-size: 10pt;
    color: #666;
}
.section {
    margin-bottom: 20px;
    page-break-inside: avoid;
}
.section-title {
    font-size: 14pt;
    font-weight: bold;
    color: #043e44;
    border-bottom: 2px solid #03d27c;
    padding-bottom: 5px;
    margin-bottom: 15px;
}
.entry {
    margin-bottom: 15px;
}
.company-name {
    font-weight: bold;
    margin-bottom: 2px;
    color: #043e44;
}
.job-title {
    font-weight: 600;
    color: #03d27c;
    margin: 2px 0;
}
.date-range {
    font-size: 10pt;
    color: #666;
    margin-bottom: 5px;
}
.responsibilities {
    margin-top: 8px;
    text-align: justify;
}
.skills-list {
    display: flex;
    flex-wrap: wrap;
    margin: 0;
    padding: 0;
}
.skill-item {
    background-color: rgba(3, 210, 124, 0.1);
    border: 1px solid #03d27c;
    border-radius: 4px;
    padding: 3px 8px;
    margin: 3px;
    font-size: 10pt;
    color: #043e44;
    display: inline-block;
}
.skill-category {
    font-weight: bold;
    margin-top: 10px;
    margin-bottom: 5px;
    color: #043e44;
}
.language {
    margin-bottom: 5px;
}
.language-name {
    font-weight: bold;
}
.language-level {
    color: #03d27c;
}
ul {
    padding-left: 20px;
    margin: 5px 0;
}
li {
    margin-bottom: 3px;
}
`

const professionalMarkup = `<html>
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
{{range .Sections}}{{template "section" .}}{{end}}
</body>
</html>
{{define "section"}}<div class="section">
{{if .Title}}<div class="section-title">{{.Title}}</div>{{end}}
{{template "sectionBody" .}}</div>
{{end}}
{{define "sectionBody"}}{{if eq .Kind "summary"}}<p>{{.Text}}</p>
{{end}}{{range .Groups}}{{if .Label}}<div class="skill-category">{{.Label}}:</div>{{end}}<div class="skills-list">{{range .Items}}<div class="skill-item">{{.}}</div>{{end}}</div>
{{end}}{{range .Entries}}<div class="entry">
<div class="company-name">{{.Heading}}</div>
{{if .Subheading}}<div class="job-title">{{.Subheading}}</div>{{end}}
{{if .DateLine}}<div class="date-range">{{.DateLine}}</div>{{end}}
{{if .Body}}<div class="responsibilities">{{.Body}}</div>{{end}}
</div>
{{end}}{{range .Languages}}<div class="language"><span class="language-name">{{.Name}}</span> - <span class="language-level">{{.Level}}</span></div>
{{end}}{{end}}`

var professionalDefinition = &Definition{
	Name: "professional",
	SectionOrder: []SectionKind{
		SectionSummary,
		SectionCompetencies,
		SectionExperience,
		SectionEducation,
		SectionCertificates,
		SectionExtracurricular,
		SectionLanguages,
		SectionAdditionalSkills,
	},
	Titles: map[SectionKind]string{
		SectionSummary:          "Professional Summary",
		SectionCompetencies:     "Key Competencies",
		SectionExperience:       "Professional Experience",
		SectionEducation:        "Education",
		SectionCertificates:     "Certifications",
		SectionExtracurricular:  "Extracurricular Activities",
		SectionLanguages:        "Languages",
		SectionAdditionalSkills: "Additional Skills",
	},
	Stylesheet: professionalCSS,
	Markup:     template.Must(template.New("professional").Parse(professionalMarkup)),
}
