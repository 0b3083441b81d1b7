package effects

import (
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/Zachkp/portfolio/internal/render"
)

// AnimatedList staggers grid children in as their grid scrolls into view,
// and slides experience items in from the left.
type AnimatedList struct{}

func (AnimatedList) Name() string { return "AnimatedList" }

func (AnimatedList) Available(p *render.Page) bool {
	return hasLibraries(p, libGSAP, libScrollTrigger)
}

func (AnimatedList) Apply(p *render.Page, _ Env) error {
	p.Find(".projects-grid, .skills-grid, .categories-grid").Each(func(_ int, grid *goquery.Selection) {
		grid.SetAttr("data-animate-trigger", "top 85%")
		stagger(grid.Children(), "rise")
	})

	items := p.Find(".experience-item")
	if items.Length() > 0 {
		p.Find(".experience-section").SetAttr("data-animate-trigger", "top 80%")
		stagger(items, "slide")
	}
	return nil
}

func stagger(items *goquery.Selection, kind string) {
	items.Each(func(i int, s *goquery.Selection) {
		s.SetAttr("data-animate", kind)
		setStyleProperty(s, "--stagger-index", strconv.Itoa(i))
	})
}
