package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "release",
		},
		Content: ContentConfig{
			DataFile:     "data.json",
			ProjectsFile: "projects.json",
		},
		Effects: EffectsConfig{
			Enabled: true,
			Delay:   50 * time.Millisecond,
		},
		Theme: ThemeConfig{
			Default: "dark",
		},
		Visitors: VisitorsConfig{
			Enabled:   true,
			DBPath:    "data/portfolio.db",
			Retention: 365 * 24 * time.Hour,
		},
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: "587",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
