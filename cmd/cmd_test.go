package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	cfgFile = filepath.Join(t.TempDir(), "none.yml")
	t.Setenv("PORTFOLIO_VISITORS__ENABLED", "false")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"render", "--config", cfgFile, "--page", "/", "--theme", "light"})
	require.NoError(t, rootCmd.Execute())

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	require.NoError(t, err)
	require.True(t, doc.Find("body").HasClass("light-theme"))
	require.Equal(t, 4, doc.Find(".project-card").Length())
}

func TestRenderRejectsUnknownPage(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"render", "--config", filepath.Join(t.TempDir(), "none.yml"), "--page", "/nope"})
	require.ErrorContains(t, rootCmd.Execute(), `unknown page "/nope"`)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "portfolio dev\n", out.String())
}
