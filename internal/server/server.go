// Package server exposes the portfolio over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/admin"
	"github.com/Zachkp/portfolio/internal/app"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/effects"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/visitors"
)

// Pages maps routes to their skeletons inside the site file system.
var Pages = map[string]string{
	"/":         "templates/index.html",
	"/projects": "templates/projects.html",
}

// Sender is satisfied by *contact.Mailer.
type Sender interface {
	Send(msg contact.Message) error
}

// Deps are the collaborators the server routes to. Visitors and Admin are
// optional.
type Deps struct {
	Site     fs.FS
	Pipeline *app.Pipeline
	Mailer   Sender
	Visitors visitors.Recorder
	Admin    *admin.Handler
}

type Server struct {
	cfg          *config.Config
	deps         Deps
	engine       *gin.Engine
	defaultTheme theme.Theme
	logger       *zap.Logger
}

func New(cfg *config.Config, deps Deps, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultTheme, ok := theme.Parse(cfg.Theme.Default)
	if !ok {
		defaultTheme = theme.Dark
	}

	gin.SetMode(cfg.Server.Mode)
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger(logger))
	if deps.Visitors != nil {
		engine.Use(visitors.Middleware(deps.Visitors, logger))
	}

	tmpl, err := template.ParseFS(deps.Site, "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing fragments: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)

	s := &Server{cfg: cfg, deps: deps, engine: engine, defaultTheme: defaultTheme, logger: logger}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	r := s.engine

	for route, skeleton := range Pages {
		r.GET(route, s.page(skeleton))
	}

	// The documents live next to the page so the browser and remote
	// loaders can fetch them by relative path.
	data := http.FS(s.deps.Site)
	r.StaticFileFS("/"+s.cfg.Content.DataFile, "data/"+s.cfg.Content.DataFile, data)
	r.StaticFileFS("/"+s.cfg.Content.ProjectsFile, "data/"+s.cfg.Content.ProjectsFile, data)

	for _, dir := range []string{"static", "images"} {
		sub, err := fs.Sub(s.deps.Site, dir)
		if err != nil {
			return fmt.Errorf("mounting %s: %w", dir, err)
		}
		r.StaticFS("/"+dir, http.FS(sub))
	}

	r.POST("/theme", s.toggleTheme)
	r.POST("/contact", s.contact)
	r.GET("/privacy", s.privacy)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.deps.Admin != nil {
		s.deps.Admin.Register(r)
	}
	return nil
}

// Router returns the HTTP handler, for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// page serves a skeleton hydrated for the requesting visitor. Load failures
// are logged by the pipeline; the visitor still gets the page.
func (s *Server) page(skeleton string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := fs.ReadFile(s.deps.Site, skeleton)
		if err != nil {
			s.logger.Error("reading skeleton", zap.String("page", skeleton), zap.Error(err))
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		p, err := render.ParsePageBytes(raw)
		if err != nil {
			s.logger.Error("parsing skeleton", zap.String("page", skeleton), zap.Error(err))
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}

		t := theme.Resolve(c.Request, s.defaultTheme)
		theme.Apply(p, t)
		_ = s.deps.Pipeline.Run(c.Request.Context(), p, effects.Env{Light: t.IsLight()})

		out, err := p.HTML()
		if err != nil {
			s.logger.Error("serializing page", zap.Error(err))
			c.String(http.StatusInternalServerError, "page unavailable")
			return
		}
		c.Header("Vary", "Cookie, Sec-CH-Prefers-Color-Scheme")
		c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
	}
}

func (s *Server) toggleTheme(c *gin.Context) {
	next := theme.Resolve(c.Request, s.defaultTheme).Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.CookieName, string(next), theme.CookieMaxAge, "/", "", s.cfg.Server.SecureCookie, false)

	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, backPath(c.Request))
}

// backPath returns the same-origin path of the referer, or "/".
func backPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) || !strings.HasPrefix(ref.Path, "/") {
		return "/"
	}
	return ref.Path
}

func (s *Server) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", gin.H{
		"tracking":      s.cfg.Visitors.Enabled,
		"retentionDays": int(s.cfg.Visitors.Retention.Hours() / 24),
	})
}

// Handle contact form submission with HTMX
func (s *Server) contact(c *gin.Context) {
	msg := contact.Message{
		Name:    c.PostForm("fullName"),
		Email:   c.PostForm("email"),
		Message: c.PostForm("message"),
	}

	if err := s.deps.Mailer.Send(msg); err != nil {
		text := "Sorry, there was an error sending your message. Please try again later."
		if errors.Is(err, contact.ErrIncomplete) {
			text = "Please fill in your name, email and message."
		}
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": text})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
