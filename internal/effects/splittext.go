package effects

import (
	"html"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zachkp/portfolio/internal/render"
)

const (
	heroStartDelay = 0.2
	heroStep       = 0.5
	socialDelay    = 1.5
)

// SplitText splits headline text into word and character spans. The hero
// lines type in one after another; section titles reveal on scroll.
type SplitText struct{}

func (SplitText) Name() string { return "SplitText" }

func (SplitText) Available(p *render.Page) bool {
	return hasLibraries(p, libGSAP, libSplitType, libScrollTrigger)
}

func (SplitText) Apply(p *render.Page, _ Env) error {
	delay := heroStartDelay
	p.Find(".hero-title, .hero-subtitle, .hero-description").Each(func(_ int, s *goquery.Selection) {
		if strings.TrimSpace(s.Text()) == "" || s.AttrOr("data-split", "") != "" {
			return
		}
		split(s, "typewriter")
		s.SetAttr("data-split-delay", formatSeconds(delay))
		delay += heroStep
	})

	p.Find(".hero-social-buttons .social-btn").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("data-animate", "social")
		setStyleProperty(s, "--stagger-index", strconv.Itoa(i))
	})
	if p.Has(".hero-social-buttons .social-btn") {
		p.Find(".hero-social-buttons").SetAttr("data-animate-delay", formatSeconds(socialDelay))
	}

	p.Find(".section-title").Each(func(_ int, s *goquery.Selection) {
		if s.AttrOr("data-split", "") != "" {
			return
		}
		split(s, "reveal")
	})
	return nil
}

// split replaces the text of s with word spans holding one span per
// character. Character indices run across the whole element.
func split(s *goquery.Selection, mode string) {
	var b strings.Builder
	idx := 0
	for i, word := range strings.Fields(s.Text()) {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(`<span class="word">`)
		for _, r := range word {
			b.WriteString(`<span class="char" style="--char-index: `)
			b.WriteString(strconv.Itoa(idx))
			b.WriteString(`">`)
			b.WriteString(html.EscapeString(string(r)))
			b.WriteString(`</span>`)
			idx++
		}
		b.WriteString(`</span>`)
	}
	s.SetAttr("aria-label", strings.Join(strings.Fields(s.Text()), " "))
	s.SetHtml(b.String())
	s.SetAttr("data-split", mode)
}

func formatSeconds(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
