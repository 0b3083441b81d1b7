package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Zachkp/portfolio/internal/content"
)

// Options controls how free-form text is turned into markup.
type Options struct {
	// Markdown renders description fields as sanitized Markdown instead of
	// escaped plain text.
	Markdown bool
}

// Renderer maps content subtrees onto page containers.
type Renderer struct {
	opts   Options
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// All runs every section step. A failing step does not stop the others.
func (r *Renderer) All(p *Page, b *content.Bundle) error {
	if b == nil {
		return nil
	}
	var errs []error
	if doc := b.Document; doc != nil {
		errs = append(errs,
			r.Hero(p, doc.Hero),
			r.About(p, doc.About),
			r.DetailedSkills(p, doc.DetailedSkills),
			r.Experience(p, doc.Experience),
			r.Contact(p, doc.Contact),
		)
	}
	errs = append(errs, r.Projects(p, b.Projects))
	return errors.Join(errs...)
}

func (r *Renderer) Hero(p *Page, hero *content.Hero) error {
	if hero == nil {
		return nil
	}
	texts := []struct{ id, text string }{
		{"hero-title", hero.Name},
		{"hero-subtitle", hero.Title},
		{"hero-description", hero.Description},
	}
	for _, t := range texts {
		if el := p.byID(t.id); el != nil && t.text != "" {
			el.SetText(t.text)
		}
	}

	if img := p.byID("hero-image"); img != nil && hero.Image != "" {
		img.SetAttr("src", hero.Image)
	}

	if social := p.byID("hero-social"); social != nil && hero.Social != nil {
		html, err := execute("social", hero.Social)
		if err != nil {
			return fmt.Errorf("rendering hero social: %w", err)
		}
		social.SetHtml(html)
	}
	return nil
}

func (r *Renderer) About(p *Page, about *content.About) error {
	if about == nil {
		return nil
	}

	if el := p.byID("about-objective"); el != nil && about.Objective != "" {
		el.SetText(about.Objective)
	}

	steps := []struct {
		id       string
		present  bool
		template string
		data     any
	}{
		{"education-list", about.Education != nil, "education", about.Education},
		{"soft-skills-list", about.SoftSkills != nil, "tags", tagList{"skill-tag", about.SoftSkills}},
		{"certification-list", about.Certifications != nil, "certifications", about.Certifications},
		{"languages-list", about.Languages != nil, "tags", tagList{"language-tag", about.Languages}},
	}
	for _, s := range steps {
		el := p.byID(s.id)
		if el == nil || !s.present {
			continue
		}
		html, err := execute(s.template, s.data)
		if err != nil {
			return fmt.Errorf("rendering %s: %w", s.id, err)
		}
		el.SetHtml(html)
	}
	return nil
}

type tagList struct {
	Class string
	Items []string
}

type skillView struct {
	Title    string
	Overview template.HTML
	Tools    []string
}

func (r *Renderer) DetailedSkills(p *Page, skills []content.DetailedSkill) error {
	el := p.byID("detailed-skills-grid")
	if el == nil || skills == nil {
		return nil
	}
	views := make([]skillView, 0, len(skills))
	for _, s := range skills {
		views = append(views, skillView{Title: s.Title, Overview: r.inline(s.Overview), Tools: s.Tools})
	}
	html, err := execute("skills", views)
	if err != nil {
		return fmt.Errorf("rendering detailed skills: %w", err)
	}
	el.SetHtml(html)
	return nil
}

type experienceView struct {
	content.ExperienceItem
	Description template.HTML
}

func (r *Renderer) Experience(p *Page, items []content.ExperienceItem) error {
	el := p.byID("experience-container")
	if el == nil || items == nil {
		return nil
	}
	views := make([]experienceView, 0, len(items))
	for _, item := range items {
		views = append(views, experienceView{ExperienceItem: item, Description: r.block(item.Description)})
	}
	html, err := execute("experience", views)
	if err != nil {
		return fmt.Errorf("rendering experience: %w", err)
	}
	el.SetHtml(html)
	return nil
}

type contactView struct {
	*content.Contact
	PhoneHref       template.URL
	InstagramHandle string
	GitHubUser      string
}

// Contact lists one method per non-empty field.
func (r *Renderer) Contact(p *Page, c *content.Contact) error {
	el := p.byID("contact-container")
	if el == nil || c == nil || *c == (content.Contact{}) {
		return nil
	}
	view := contactView{
		Contact:         c,
		PhoneHref:       template.URL("tel:" + strings.Join(strings.Fields(c.Phone), "")),
		InstagramHandle: LastPathSegment(c.Instagram),
		GitHubUser:      LastPathSegment(c.GitHub),
	}
	html, err := execute("contact", view)
	if err != nil {
		return fmt.Errorf("rendering contact: %w", err)
	}
	el.SetHtml(html)
	return nil
}

type projectView struct {
	Title       string
	Description template.HTML
	Tech        []string
	Link        string
}

// Projects fills every .projects-grid on the page with the same cards.
func (r *Renderer) Projects(p *Page, projects []content.Project) error {
	grids := p.Find(".projects-grid")
	if grids.Length() == 0 || projects == nil {
		return nil
	}
	views := make([]projectView, 0, len(projects))
	for _, pr := range projects {
		link := pr.Link
		if link == "" {
			link = "#"
		}
		views = append(views, projectView{Title: pr.Title, Description: r.inline(pr.Description), Tech: pr.Tech, Link: link})
	}
	html, err := execute("projects", views)
	if err != nil {
		return fmt.Errorf("rendering projects: %w", err)
	}
	grids.SetHtml(html)
	return nil
}

// LastPathSegment returns the last non-empty "/"-separated segment of s,
// e.g. the handle of a profile URL.
func LastPathSegment(s string) string {
	parts := strings.Split(s, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

// block renders s as one or more paragraphs.
func (r *Renderer) block(s string) template.HTML {
	if !r.opts.Markdown {
		return template.HTML("<p>" + template.HTMLEscapeString(s) + "</p>")
	}
	return template.HTML(r.markdown(s))
}

// inline renders s for use inside an existing paragraph. A single Markdown
// paragraph is unwrapped; anything richer is kept as is.
func (r *Renderer) inline(s string) template.HTML {
	if !r.opts.Markdown {
		return template.HTML(template.HTMLEscapeString(s))
	}
	out := strings.TrimSpace(r.markdown(s))
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(out)
}

func (r *Renderer) markdown(s string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return template.HTMLEscapeString(s)
	}
	return r.policy.Sanitize(buf.String())
}
