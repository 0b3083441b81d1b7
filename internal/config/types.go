package config

import "time"

// Config is the full site configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server" yaml:"server"`
	Site     SiteConfig     `koanf:"site" yaml:"site"`
	Content  ContentConfig  `koanf:"content" yaml:"content"`
	Effects  EffectsConfig  `koanf:"effects" yaml:"effects"`
	Theme    ThemeConfig    `koanf:"theme" yaml:"theme"`
	Visitors VisitorsConfig `koanf:"visitors" yaml:"visitors"`
	Admin    AdminConfig    `koanf:"admin" yaml:"admin"`
	SMTP     SMTPConfig     `koanf:"smtp" yaml:"smtp"`
	Log      LogConfig      `koanf:"log" yaml:"log"`
}

type ServerConfig struct {
	Port string `koanf:"port" yaml:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode         string `koanf:"mode" yaml:"mode"`
	SecureCookie bool   `koanf:"secure_cookie" yaml:"secure_cookie"`
}

// SiteConfig points at the page skeletons and assets. An empty Dir serves
// the embedded copy.
type SiteConfig struct {
	Dir string `koanf:"dir" yaml:"dir"`
}

// ContentConfig says where the two documents come from. With BaseURL set
// they are fetched over HTTP, otherwise read from the site's data directory.
type ContentConfig struct {
	BaseURL      string `koanf:"base_url" yaml:"base_url"`
	DataFile     string `koanf:"data_file" yaml:"data_file"`
	ProjectsFile string `koanf:"projects_file" yaml:"projects_file"`
	Markdown     bool   `koanf:"markdown" yaml:"markdown"`
}

type EffectsConfig struct {
	Enabled bool          `koanf:"enabled" yaml:"enabled"`
	Delay   time.Duration `koanf:"delay" yaml:"delay"`
}

type ThemeConfig struct {
	Default string `koanf:"default" yaml:"default"`
}

type VisitorsConfig struct {
	Enabled   bool          `koanf:"enabled" yaml:"enabled"`
	DBPath    string        `koanf:"db_path" yaml:"db_path"`
	Retention time.Duration `koanf:"retention" yaml:"retention"`
}

type AdminConfig struct {
	Username string `koanf:"username" yaml:"username"`
	Password string `koanf:"password" yaml:"password"`
}

type SMTPConfig struct {
	Host string `koanf:"host" yaml:"host"`
	Port string `koanf:"port" yaml:"port"`
	User string `koanf:"user" yaml:"user"`
	Pass string `koanf:"pass" yaml:"pass"`
	To   string `koanf:"to" yaml:"to"`
}

type LogConfig struct {
	Level       string `koanf:"level" yaml:"level"`
	Development bool   `koanf:"development" yaml:"development"`
}
