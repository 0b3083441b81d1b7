// Package admin serves the cookie-protected visitor statistics endpoints.
package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/visitors"
)

const cookieName = "admin_token"

// StatsStore is satisfied by *visitors.Store.
type StatsStore interface {
	Stats(ctx context.Context) (*visitors.Stats, error)
	Recent(ctx context.Context, limit int) ([]visitors.Visit, error)
	Cleanup(ctx context.Context, retention time.Duration) (int64, error)
}

type Handler struct {
	cfg       config.AdminConfig
	store     StatsStore
	retention time.Duration
	token     string
	secure    bool
	logger    *zap.Logger
}

// New returns an admin handler with a fresh session token. Without a
// configured username and password the login always fails.
func New(cfg config.AdminConfig, store StatsStore, retention time.Duration, secure bool, logger *zap.Logger) (*Handler, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("admin credentials not configured; admin login disabled")
	}
	return &Handler{cfg: cfg, store: store, retention: retention, token: token, secure: secure, logger: logger}, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Register mounts the admin routes on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})
	r.POST("/admin/login", h.login)
	r.GET("/admin/logout", h.logout)

	g := r.Group("/admin")
	g.Use(h.auth())
	g.GET("/api/stats", h.stats)
	g.GET("/api/visitors", h.recent)
	g.GET("/export/stats", h.export)
	g.POST("/privacy/cleanup", h.cleanup)
}

func (h *Handler) login(c *gin.Context) {
	user := c.PostForm("username")
	pass := c.PostForm("password")

	if h.cfg.Username == "" || h.cfg.Password == "" || !equal(user, h.cfg.Username) || !equal(pass, h.cfg.Password) {
		h.logger.Warn("failed admin login")
		c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
			"title": "Admin Login",
			"error": "Invalid credentials",
		})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(cookieName, h.token, 3600*24, "/admin", "", h.secure, true)
	h.logger.Info("admin login")
	c.Redirect(http.StatusFound, "/admin/api/stats")
}

func (h *Handler) logout(c *gin.Context) {
	c.SetCookie(cookieName, "", -1, "/admin", "", h.secure, true)
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("loading admin stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) recent(c *gin.Context) {
	visits, err := h.store.Recent(c.Request.Context(), 200)
	if err != nil {
		h.logger.Error("loading visitors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load visitors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visitors": visits})
}

func (h *Handler) export(c *gin.Context) {
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
	h.logger.Info("admin stats exported")
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) cleanup(c *gin.Context) {
	n, err := h.store.Cleanup(c.Request.Context(), h.retention)
	if err != nil {
		h.logger.Error("visitor cleanup", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Privacy cleanup complete", "deleted": n})
}

// equal compares two secrets in constant time regardless of their lengths.
func equal(a, b string) bool {
	ha, hb := sha256.Sum256([]byte(a)), sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
