// Package app wires loading, rendering and decoration into the single pass
// that turns a page skeleton into the page a visitor sees.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/render"
)

// BundleLoader is satisfied by *content.Loader.
type BundleLoader interface {
	Load(ctx context.Context) (*content.Bundle, error)
}

// Decorator is satisfied by *effects.Runner.
type Decorator interface {
	Run(p *render.Page, env effects.Env)
}

type Pipeline struct {
	Loader   BundleLoader
	Renderer *render.Renderer
	Effects  Decorator
	Logger   *zap.Logger
}

func NewPipeline(loader BundleLoader, renderer *render.Renderer, fx Decorator, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{Loader: loader, Renderer: renderer, Effects: fx, Logger: logger}
}

// Run hydrates p. When loading fails the error is logged and returned, and
// the effects still run over whatever the skeleton holds.
func (pl *Pipeline) Run(ctx context.Context, p *render.Page, env effects.Env) error {
	bundle, err := pl.Loader.Load(ctx)
	if err != nil {
		pl.Logger.Error("initialization failed", zap.Error(err))
		pl.decorate(p, env)
		return err
	}

	if err := pl.Renderer.All(p, bundle); err != nil {
		pl.Logger.Warn("render incomplete", zap.Error(err))
	}
	pl.decorate(p, env)
	return nil
}

func (pl *Pipeline) decorate(p *render.Page, env effects.Env) {
	if pl.Effects != nil {
		pl.Effects.Run(p, env)
	}
}
