package theme

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/render"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		cookie   string
		hint     string
		fallback Theme
		want     Theme
	}{
		{name: "cookie wins", cookie: "light", hint: `"dark"`, fallback: Dark, want: Light},
		{name: "hint when no cookie", hint: `"light"`, fallback: Dark, want: Light},
		{name: "dark hint over light fallback", hint: `"dark"`, fallback: Light, want: Dark},
		{name: "unquoted hint", hint: "light", fallback: Dark, want: Light},
		{name: "unknown hint", hint: `"no-preference"`, fallback: Dark, want: Dark},
		{name: "bad cookie ignored", cookie: "purple", fallback: Light, want: Light},
		{name: "fallback", fallback: Light, want: Light},
		{name: "invalid fallback is dark", fallback: Theme("x"), want: Dark},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tc.cookie})
			}
			if tc.hint != "" {
				req.Header.Set("Sec-CH-Prefers-Color-Scheme", tc.hint)
			}
			require.Equal(t, tc.want, Resolve(req, tc.fallback))
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()
	require.Equal(t, Dark, Light.Toggle())
	require.Equal(t, Light, Dark.Toggle())
}

func TestApply(t *testing.T) {
	t.Parallel()

	p, err := render.ParsePage(strings.NewReader(`<html><body>
<button id="themeToggle"></button><button id="mobileThemeToggle"></button></body></html>`))
	require.NoError(t, err)

	Apply(p, Light)
	require.True(t, p.Body().HasClass(LightClass))
	require.Equal(t, 1, p.Find("#themeToggle .fa-sun").Length())
	require.Equal(t, "Toggle Theme", strings.TrimSpace(p.Find("#mobileThemeToggle").Text()))

	Apply(p, Dark)
	require.False(t, p.Body().HasClass(LightClass))
	require.Equal(t, 1, p.Find("#mobileThemeToggle .fa-moon").Length())
}
