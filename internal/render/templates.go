package render

import (
	"bytes"
	"html/template"
)

const fragmentTemplates = `
{{define "social"}}
{{- with .LinkedIn}}<a href="{{.}}" target="_blank" class="social-btn"><i class="fab fa-linkedin-in"></i></a>{{end -}}
{{- with .GitHub}}<a href="{{.}}" target="_blank" class="social-btn"><i class="fab fa-github"></i></a>{{end -}}
{{- with .Instagram}}<a href="{{.}}" target="_blank" class="social-btn"><i class="fab fa-instagram"></i></a>{{end -}}
{{- with .Email}}<a href="{{.}}" class="social-btn"><i class="fas fa-envelope"></i></a>{{end -}}
{{end}}

{{define "education"}}
{{- range .}}
<div class="education-item">
    <h4>{{.Degree}}</h4>
    <p>{{.School}}</p>
    <p>{{.Details}}</p>
</div>
{{- end}}
{{end}}

{{define "tags"}}{{$class := .Class}}{{range .Items}}<span class="{{$class}}">{{.}}</span>{{end}}{{end}}

{{define "certifications"}}{{range .}}<li><span>•</span> {{.}}</li>{{end}}{{end}}

{{define "skills"}}
{{- range .}}
<div class="skill-card">
    <h3 class="skill-title">{{.Title}}</h3>
    <div class="skill-description">
        <p><span>Overview:</span> {{.Overview}}</p>
    </div>
    <div class="skill-tools">
        {{range .Tools}}<span class="tool-tag">{{.}}</span>{{end}}
    </div>
</div>
{{- end}}
{{end}}

{{define "experience"}}
{{- range .}}
<div class="experience-item">
    <div class="experience-header">
        <h3 class="experience-title">{{.Title}}</h3>
        <div class="experience-company">{{.Company}}</div>
    </div>
    <div class="experience-date">
        <i class="far fa-calendar-alt"></i> {{.Date}}
    </div>
    <div class="experience-location">
        <i class="fas fa-map-marker-alt"></i> {{.Location}}
    </div>
    <div class="experience-description">
        {{.Description}}
    </div>
    <div class="experience-skills">
        {{range .Skills}}<span class="experience-skill">{{.}}</span>{{end}}
    </div>
</div>
{{- end}}
{{end}}

{{define "contact"}}
{{- if .Email}}
<a href="mailto:{{.Email}}" class="contact-method">
    <div class="contact-icon email-icon"><i class="fas fa-envelope"></i></div>
    <h3>Email</h3>
    <p>{{.Email}}</p>
    <span class="contact-link">Send a message</span>
</a>
{{- end}}
{{- if .WhatsApp}}
<a href="{{.WhatsApp}}" target="_blank" class="contact-method">
    <div class="contact-icon whatsapp-icon"><i class="fab fa-whatsapp"></i></div>
    <h3>WhatsApp</h3>
    <p>{{if .Phone}}{{.Phone}}{{else}}Message me{{end}}</p>
    <span class="contact-link">Chat on WhatsApp</span>
</a>
{{- end}}
{{- if .Phone}}
<a href="{{.PhoneHref}}" class="contact-method">
    <div class="contact-icon phone-icon"><i class="fas fa-phone-alt"></i></div>
    <h3>Phone</h3>
    <p>{{.Phone}}</p>
    <span class="contact-link">Call Now</span>
</a>
{{- end}}
{{- if .Instagram}}
<a href="{{.Instagram}}" target="_blank" class="contact-method">
    <div class="contact-icon instagram-icon"><i class="fab fa-instagram"></i></div>
    <h3>Instagram</h3>
    <p>@{{.InstagramHandle}}</p>
    <span class="contact-link">Follow me</span>
</a>
{{- end}}
{{- if .LinkedIn}}
<a href="{{.LinkedIn}}" target="_blank" class="contact-method">
    <div class="contact-icon linkedin-icon"><i class="fab fa-linkedin-in"></i></div>
    <h3>LinkedIn</h3>
    <p>Connect</p>
    <span class="contact-link">Connect</span>
</a>
{{- end}}
{{- if .GitHub}}
<a href="{{.GitHub}}" target="_blank" class="contact-method">
    <div class="contact-icon github-icon"><i class="fab fa-github"></i></div>
    <h3>GitHub</h3>
    <p>{{.GitHubUser}}</p>
    <span class="contact-link">View Projects</span>
</a>
{{- end}}
{{- if .Location}}
<a href="#" class="contact-method">
    <div class="contact-icon location-icon"><i class="fas fa-map-marker-alt"></i></div>
    <h3>Location</h3>
    <p>{{.Location}}</p>
    <span class="contact-link">Open Map</span>
</a>
{{- end}}
{{end}}

{{define "projects"}}
{{- range .}}
<a href="{{.Link}}" target="_blank" class="project-card">
    <h3 class="project-title">{{.Title}}</h3>
    <div class="project-description">
        <p><span>Description:</span> {{.Description}}</p>
    </div>
    <div class="project-tech">
        {{range .Tech}}<span class="tech-tag">{{.}}</span>{{end}}
    </div>
</a>
{{- end}}
{{end}}
`

var fragments = template.Must(template.New("fragments").Parse(fragmentTemplates))

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
