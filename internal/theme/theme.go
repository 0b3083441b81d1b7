// Package theme resolves and applies the visitor's light/dark preference.
package theme

import (
	"net/http"
	"strings"

	"github.com/Zachkp/portfolio/internal/render"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// CookieName is the single key the preference is stored under.
const CookieName = "theme"

// LightClass is toggled on <body> for the light theme.
const LightClass = "light-theme"

// Parse returns the theme named by s and whether s named one.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

func (t Theme) IsLight() bool { return t == Light }

// Resolve picks the stored preference, then the browser's color-scheme hint,
// then fallback.
func Resolve(r *http.Request, fallback Theme) Theme {
	if c, err := r.Cookie(CookieName); err == nil {
		if t, ok := Parse(c.Value); ok {
			return t
		}
	}
	// Structured-field string: browsers send the value quoted.
	hint := strings.Trim(strings.TrimSpace(r.Header.Get("Sec-CH-Prefers-Color-Scheme")), `"`)
	if t, ok := Parse(hint); ok {
		return t
	}
	if _, ok := Parse(string(fallback)); !ok {
		return Dark
	}
	return fallback
}

// Apply sets the body class and the toggle button icons for t.
func Apply(p *render.Page, t Theme) {
	icon := `<i class="fas fa-moon"></i>`
	if t.IsLight() {
		p.Body().AddClass(LightClass)
		icon = `<i class="fas fa-sun"></i>`
	} else {
		p.Body().RemoveClass(LightClass)
	}
	p.Find("#themeToggle").SetHtml(icon)
	p.Find("#mobileThemeToggle").SetHtml(icon + " Toggle Theme")
}

// CookieMaxAge keeps the preference for a year.
const CookieMaxAge = 365 * 24 * 60 * 60
