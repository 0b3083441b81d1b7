package content

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultDataFile     = "data.json"
	DefaultProjectsFile = "projects.json"
)

// Loader fetches the content document and the project list together.
type Loader struct {
	Source       Source
	DataFile     string
	ProjectsFile string
}

// NewLoader returns a loader reading the default document names from src.
func NewLoader(src Source) *Loader {
	return &Loader{
		Source:       src,
		DataFile:     DefaultDataFile,
		ProjectsFile: DefaultProjectsFile,
	}
}

// Load issues both fetches in parallel and waits for them jointly. Either
// failure fails the whole load; nothing partial is returned.
func (l *Loader) Load(ctx context.Context) (*Bundle, error) {
	var (
		doc      Document
		projects []Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return l.decode(gctx, l.DataFile, &doc)
	})
	g.Go(func() error {
		return l.decode(gctx, l.ProjectsFile, &projects)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Bundle{Document: &doc, Projects: projects}, nil
}

func (l *Loader) decode(ctx context.Context, name string, v any) error {
	rc, err := l.Source.Open(ctx, name)
	if err != nil {
		return err
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
