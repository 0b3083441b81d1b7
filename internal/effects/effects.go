// Package effects decorates a rendered page with the hooks the browser-side
// animation bundle picks up: split text spans, stagger indices, glare
// classes and the orb and particle mount points.
package effects

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/render"
)

// DefaultDelay is how long the client waits after hydration before it starts
// animating.
const DefaultDelay = 50 * time.Millisecond

// Env is what initializers may know about the request.
type Env struct {
	Light bool
}

// Initializer is one independent decoration.
type Initializer interface {
	Name() string
	// Available reports whether the libraries the decoration drives are
	// loaded by the page.
	Available(p *render.Page) bool
	Apply(p *render.Page, env Env) error
}

// Runner applies a fixed set of initializers.
type Runner struct {
	Initializers []Initializer
	Delay        time.Duration
	Logger       *zap.Logger
}

// NewRunner returns a runner with the default decorations.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Initializers: []Initializer{SplitText{}, GlareHover{}, AnimatedList{}, Orb{}, Particles{}},
		Delay:        DefaultDelay,
		Logger:       logger,
	}
}

// Run applies every available initializer once. Failures are logged and do
// not affect the remaining initializers.
func (r *Runner) Run(p *render.Page, env Env) {
	if p == nil {
		return
	}
	p.Body().SetAttr("data-effects-delay", strconv.FormatInt(r.Delay.Milliseconds(), 10))

	for _, in := range r.Initializers {
		if err := safeApply(in, p, env); err != nil {
			r.Logger.Error("effect failed", zap.String("effect", in.Name()), zap.Error(err))
		}
	}
}

func safeApply(in Initializer, p *render.Page, env Env) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	if !in.Available(p) {
		return nil
	}
	return in.Apply(p, env)
}

// Script selectors per browser library. Core files are matched by name
// because plugins are often served from the core library's directory.
const (
	libGSAP          = `script[src$="/gsap.min.js"], script[src$="/gsap.js"]`
	libScrollTrigger = `script[src*="ScrollTrigger"]`
	libSplitType     = `script[src*="split-type"]`
	libThree         = `script[src*="three"]`
	libP5            = `script[src$="/p5.min.js"], script[src$="/p5.js"]`
)

// hasLibraries reports whether the page loads every given library.
func hasLibraries(p *render.Page, libs ...string) bool {
	for _, lib := range libs {
		if !p.Has(lib) {
			return false
		}
	}
	return true
}

// setStyleProperty sets one declaration in the inline style of every
// element of s, keeping the other declarations.
func setStyleProperty(s *goquery.Selection, name, value string) {
	s.Each(func(_ int, el *goquery.Selection) {
		var decls []string
		for _, d := range strings.Split(el.AttrOr("style", ""), ";") {
			d = strings.TrimSpace(d)
			if d == "" {
				continue
			}
			if k, _, ok := strings.Cut(d, ":"); ok && strings.TrimSpace(k) == name {
				continue
			}
			decls = append(decls, d)
		}
		el.SetAttr("style", strings.Join(append(decls, name+": "+value), "; "))
	})
}
