package visitors

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recorder is satisfied by *Store.
type Recorder interface {
	Record(ctx context.Context, ip, userAgent, path string) error
}

var skippedPrefixes = []string{"/static/", "/images/", "/admin/", "/favicon", "/privacy", "/healthz"}

// Skip reports whether a request path is never tracked.
func Skip(path string) bool {
	for _, p := range skippedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return strings.HasSuffix(path, ".json")
}

// Middleware records page views in the background. Requests carrying
// DNT: 1 are not recorded.
func Middleware(rec Recorder, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if Skip(path) || c.GetHeader("DNT") == "1" || c.Request.Method != "GET" {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := rec.Record(ctx, ip, ua, path); err != nil {
				logger.Warn("recording visitor", zap.Error(err))
			}
		}()
		c.Next()
	}
}

// StartCleanup deletes visits older than retention now and then once a day
// until ctx is done.
func StartCleanup(ctx context.Context, s *Store, retention time.Duration, logger *zap.Logger) {
	run := func() {
		n, err := s.Cleanup(ctx, retention)
		if err != nil {
			logger.Warn("visitor cleanup", zap.Error(err))
			return
		}
		if n > 0 {
			logger.Info("visitor cleanup", zap.Int64("deleted", n))
		}
	}

	go func() {
		run()
		t := time.NewTicker(24 * time.Hour)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				run()
			}
		}
	}()
}
