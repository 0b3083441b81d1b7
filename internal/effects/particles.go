package effects

import (
	"github.com/Zachkp/portfolio/internal/render"
)

// RGB triples, read by the p5 sketch in site.js.
const (
	particlesLightColor = "124,58,237"
	particlesDarkColor  = "167,139,250"
)

// Particles configures the drifting particle background drawn into
// #particles. Particles leaving the canvas are dropped.
type Particles struct{}

func (Particles) Name() string { return "Particles" }

func (Particles) Available(p *render.Page) bool {
	return hasLibraries(p, libP5) && p.Has("#particles")
}

func (Particles) Apply(p *render.Page, env Env) error {
	color := particlesDarkColor
	if env.Light {
		color = particlesLightColor
	}
	p.Find("#particles").First().
		SetAttr("data-particles-color", color).
		SetAttr("data-particles-alpha", "100").
		SetAttr("data-particles-rate", "2").
		SetAttr("data-particles-size", "5")
	return nil
}
