package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/render"
)

type stubLoader struct {
	bundle *content.Bundle
	err    error
}

func (s stubLoader) Load(context.Context) (*content.Bundle, error) { return s.bundle, s.err }

type countingDecorator struct {
	runs    int
	titleAt string
}

func (d *countingDecorator) Run(p *render.Page, _ effects.Env) {
	d.runs++
	d.titleAt = p.Find("#hero-title").Text()
}

const page = `<html><body><h1 id="hero-title">Loading</h1><div class="projects-grid"></div></body></html>`

func parse(t *testing.T) *render.Page {
	t.Helper()
	p, err := render.ParsePage(strings.NewReader(page))
	require.NoError(t, err)
	return p
}

func TestPipelineRendersBeforeEffects(t *testing.T) {
	t.Parallel()

	fx := &countingDecorator{}
	pl := NewPipeline(stubLoader{bundle: &content.Bundle{
		Document: &content.Document{Hero: &content.Hero{Name: "Jane Doe"}},
		Projects: []content.Project{{Title: "a"}, {Title: "b"}, {Title: "c"}},
	}}, render.NewRenderer(render.Options{}), fx, nil)

	p := parse(t)
	require.NoError(t, pl.Run(context.Background(), p, effects.Env{}))

	require.Equal(t, 1, fx.runs)
	require.Equal(t, "Jane Doe", fx.titleAt)
	require.Equal(t, 3, p.Find(".project-card").Length())
}

func TestPipelineFallsBackToEffectsOnLoadFailure(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	fx := &countingDecorator{}
	loadErr := errors.New("failed to load data.json")
	pl := NewPipeline(stubLoader{err: loadErr}, render.NewRenderer(render.Options{}), fx, zap.New(core))

	p := parse(t)
	err := pl.Run(context.Background(), p, effects.Env{})

	require.ErrorIs(t, err, loadErr)
	require.Equal(t, 1, fx.runs, "effects must still be initialized")
	require.Equal(t, "Loading", fx.titleAt)
	require.Equal(t, 1, logs.FilterMessage("initialization failed").Len())
}

func TestPipelineWithRealEffects(t *testing.T) {
	t.Parallel()

	pl := NewPipeline(stubLoader{err: errors.New("offline")}, render.NewRenderer(render.Options{}), effects.NewRunner(nil), nil)
	p := parse(t)
	require.Error(t, pl.Run(context.Background(), p, effects.Env{}))
	require.Equal(t, "50", p.Body().AttrOr("data-effects-delay", ""))
}
