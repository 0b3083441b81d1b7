package effects

import (
	"github.com/Zachkp/portfolio/internal/render"
)

const (
	glareTargets = ".project-card, .skill-card, .contact-method"
	glareAngle   = "-45"
)

// GlareHover marks cards for the pointer-follow glare: site.css draws the
// sheen from --glare-angle, site.js moves it with --glare-x/--glare-y. It
// needs no library.
type GlareHover struct{}

func (GlareHover) Name() string { return "GlareHover" }

func (GlareHover) Available(p *render.Page) bool { return p.Has(glareTargets) }

func (GlareHover) Apply(p *render.Page, _ Env) error {
	cards := p.Find(glareTargets)
	cards.AddClass("glare-hover").SetAttr("data-glare-angle", glareAngle)
	setStyleProperty(cards, "--glare-angle", glareAngle+"deg")
	return nil
}
