package server

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/app"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/web"
)

type fakeSender struct {
	got contact.Message
	err error
}

func (f *fakeSender) Send(m contact.Message) error {
	f.got = m
	return f.err
}

type failingLoader struct{}

func (failingLoader) Load(context.Context) (*content.Bundle, error) {
	return nil, errors.New("failed to load data.json")
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Server.Mode = "test"
	cfg.Visitors.Enabled = false
	return cfg
}

func newServer(t *testing.T, loader app.BundleLoader, sender Sender) *Server {
	t.Helper()
	if loader == nil {
		data, err := fs.Sub(web.FS, "data")
		require.NoError(t, err)
		loader = content.NewLoader(content.FSSource{FS: data})
	}
	if sender == nil {
		sender = &fakeSender{}
	}
	pl := app.NewPipeline(loader, render.NewRenderer(render.Options{}), effects.NewRunner(nil), nil)
	srv, err := New(testConfig(), Deps{Site: web.FS, Pipeline: pl, Mailer: sender}, nil)
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func document(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(w.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestIndexIsHydrated(t *testing.T) {
	srv := newServer(t, nil, nil)

	w := get(t, srv.Router(), "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.NotEmpty(t, w.Header().Get(requestIDHeader))

	doc := document(t, w)
	require.Equal(t, "Zach Kordas-Potter", doc.Find("#hero-title").AttrOr("aria-label", ""))
	require.Equal(t, 4, doc.Find(".projects-grid .project-card").Length())
	require.Equal(t, 2, doc.Find("#experience-container .experience-item").Length())
	require.Equal(t, 7, doc.Find("#contact-container .contact-method").Length())
	require.Equal(t, "50", doc.Find("body").AttrOr("data-effects-delay", ""))
	require.Equal(t, "#a78bfa", doc.Find(".hero > #orb-canvas").AttrOr("data-orb-color", ""))
	require.Equal(t, "167,139,250", doc.Find("#particles").AttrOr("data-particles-color", ""))
	require.False(t, doc.Find("body").HasClass("light-theme"))
}

func TestProjectsPage(t *testing.T) {
	srv := newServer(t, nil, nil)

	doc := document(t, get(t, srv.Router(), "/projects"))
	require.Equal(t, 4, doc.Find(".project-card").Length())
	require.Equal(t, 0, doc.Find("#orb-canvas").Length(), "no hero, no orb")
}

func TestLightThemeCookie(t *testing.T) {
	srv := newServer(t, nil, nil)

	doc := document(t, get(t, srv.Router(), "/", &http.Cookie{Name: "theme", Value: "light"}))
	require.True(t, doc.Find("body").HasClass("light-theme"))
	require.Equal(t, 1, doc.Find("#themeToggle .fa-sun").Length())
	require.Equal(t, "#7c3aed", doc.Find("#orb-canvas").AttrOr("data-orb-color", ""))
}

func TestLoadFailureStillServesDecoratedPage(t *testing.T) {
	srv := newServer(t, failingLoader{}, nil)

	w := get(t, srv.Router(), "/")
	require.Equal(t, http.StatusOK, w.Code)

	doc := document(t, w)
	require.Empty(t, strings.TrimSpace(doc.Find("#hero-title").Text()))
	require.Equal(t, 0, doc.Find(".project-card").Length())
	require.Equal(t, "50", doc.Find("body").AttrOr("data-effects-delay", ""))
	require.Equal(t, 1, doc.Find("#orb-canvas").Length())
}

func TestDocumentsAndAssetsAreServed(t *testing.T) {
	srv := newServer(t, nil, nil)

	for _, path := range []string{"/data.json", "/projects.json", "/static/css/site.css", "/images/profile.svg", "/healthz"} {
		w := get(t, srv.Router(), path)
		require.Equal(t, http.StatusOK, w.Code, path)
	}
	require.Contains(t, get(t, srv.Router(), "/data.json").Body.String(), `"hero"`)
}

func TestThemeToggle(t *testing.T) {
	srv := newServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "true", w.Header().Get("HX-Refresh"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "light", cookies[0].Value)
	require.Equal(t, "/", cookies[0].Path)
	require.Equal(t, 365*24*60*60, cookies[0].MaxAge)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	require.False(t, cookies[0].HttpOnly)

	req = httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(cookies[0])
	req.Header.Set("Referer", "http://example.com/projects")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/projects", w.Header().Get("Location"))
	require.Equal(t, "dark", w.Result().Cookies()[0].Value)
}

func TestPrivacyPage(t *testing.T) {
	srv := newServer(t, nil, nil)

	w := get(t, srv.Router(), "/privacy")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "does not record visits")

	cfg := testConfig()
	cfg.Visitors.Enabled = true
	tracked, err := New(cfg, Deps{Site: web.FS, Pipeline: srv.deps.Pipeline, Mailer: &fakeSender{}}, nil)
	require.NoError(t, err)
	w = get(t, tracked.Router(), "/privacy")
	require.Contains(t, w.Body.String(), "deleted after 365 days")
	require.Contains(t, w.Body.String(), "Do Not Track")
}

func TestGlareAndParticleAssets(t *testing.T) {
	srv := newServer(t, nil, nil)

	css := get(t, srv.Router(), "/static/css/site.css").Body.String()
	require.Contains(t, css, ".glare-hover::before")
	require.Contains(t, css, "var(--glare-x")

	js := get(t, srv.Router(), "/static/js/site.js").Body.String()
	require.Contains(t, js, "pointermove")
	require.Contains(t, js, "glareAngle")
	require.Contains(t, js, "particlesColor")
}

func TestBackPathRejectsForeignReferer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "https://evil.test/phish")
	require.Equal(t, "/", backPath(req))
}

func TestContactForm(t *testing.T) {
	sender := &fakeSender{}
	srv := newServer(t, nil, sender)

	post := func() *httptest.ResponseRecorder {
		form := url.Values{"fullName": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hi"}}
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		return w
	}

	w := post()
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "contact-result success")
	require.Equal(t, "Ada", sender.got.Name)

	sender.err = contact.ErrNotConfigured
	w = post()
	require.Contains(t, w.Body.String(), "contact-result error")
}

func TestPipelineOverHTTP(t *testing.T) {
	origin := httptest.NewServer(newServer(t, nil, nil).Router())
	defer origin.Close()

	loader := content.NewLoader(content.NewHTTPSource(origin.URL, origin.Client()))
	srv := newServer(t, loader, nil)

	doc := document(t, get(t, srv.Router(), "/"))
	require.Equal(t, 4, doc.Find(".project-card").Length())
	require.Equal(t, "Software Developer", doc.Find("#hero-subtitle").AttrOr("aria-label", ""))
}
