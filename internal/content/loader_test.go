package content

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const sampleData = `{
  "hero": {
    "name": "Jane Doe",
    "title": "Backend Engineer",
    "description": "Builds things.",
    "social": {"github": "https://github.com/janedoe"}
  },
  "about": {"objective": "Ship it.", "softSkills": ["Focus"]},
  "experience": [
    {"title": "Engineer", "company": "Acme", "date": "2020 - Present", "location": "Remote", "description": "Did work.", "skills": ["Go"]}
  ]
}`

const sampleProjects = `[
  {"title": "One", "description": "first", "tech": ["Go"]},
  {"title": "Two", "description": "second", "tech": [], "link": "https://example.com/two"}
]`

func TestLoaderHTTP(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/site/data.json":
			_, _ = w.Write([]byte(sampleData))
		case "/site/projects.json":
			_, _ = w.Write([]byte(sampleProjects))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewLoader(NewHTTPSource(srv.URL+"/site/", srv.Client()))
	bundle, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, hits.Load())

	want := &Document{
		Hero: &Hero{
			Name:        "Jane Doe",
			Title:       "Backend Engineer",
			Description: "Builds things.",
			Social:      &Social{GitHub: "https://github.com/janedoe"},
		},
		About: &About{Objective: "Ship it.", SoftSkills: []string{"Focus"}},
		Experience: []ExperienceItem{{
			Title: "Engineer", Company: "Acme", Date: "2020 - Present",
			Location: "Remote", Description: "Did work.", Skills: []string{"Go"},
		}},
	}
	if diff := cmp.Diff(want, bundle.Document); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, bundle.Projects, 2)
	require.Equal(t, "https://example.com/two", bundle.Projects[1].Link)
	require.Nil(t, bundle.Document.Contact)
}

func TestLoaderFailsWhenEitherDocumentFails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/data.json" {
			_, _ = w.Write([]byte(sampleData))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	bundle, err := NewLoader(NewHTTPSource(srv.URL, srv.Client())).Load(context.Background())
	require.Nil(t, bundle)
	require.ErrorIs(t, err, ErrStatus)
	require.Contains(t, err.Error(), "failed to load projects.json")
}

func TestLoaderFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data.json":     {Data: []byte(`{}`)},
		"projects.json": {Data: []byte(`null`)},
	}
	bundle, err := NewLoader(FSSource{FS: fsys}).Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, bundle.Document.Hero)
	require.Nil(t, bundle.Projects)
}

func TestLoaderFSMissingFile(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"data.json": {Data: []byte(`{}`)}}
	_, err := NewLoader(FSSource{FS: fsys}).Load(context.Background())
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoaderRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data.json":     {Data: []byte(`{"hero": `)},
		"projects.json": {Data: []byte(`[]`)},
	}
	_, err := NewLoader(FSSource{FS: fsys}).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding data.json")
}
