package effects

import (
	"github.com/Zachkp/portfolio/internal/render"
)

const (
	orbLightColor = "#7c3aed"
	orbDarkColor  = "#a78bfa"
)

// Orb mounts the rotating wireframe icosahedron behind the hero.
type Orb struct{}

func (Orb) Name() string { return "Orb" }

func (Orb) Available(p *render.Page) bool {
	return hasLibraries(p, libThree) && p.Has(".hero")
}

func (Orb) Apply(p *render.Page, env Env) error {
	if p.Has("#orb-canvas") {
		return nil
	}
	color := orbDarkColor
	if env.Light {
		color = orbLightColor
	}
	p.Find(".hero").First().PrependHtml(`<div id="orb-canvas" class="orb-canvas" aria-hidden="true"` +
		` data-orb-color="` + color + `" data-orb-radius="2" data-orb-detail="2"` +
		` data-orb-opacity="0.3" data-orb-speed="0.002"></div>`)
	return nil
}
