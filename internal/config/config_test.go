package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/finbook/format"
	"github.com/tsawler/finbook/workbook"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FINBOOK_OUTPUT", "FINBOOK_FORMAT", "FINBOOK_AUTHOR", "FINBOOK_COMPANY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "finbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, workbook.DefaultFilename, cfg.Output)
	assert.Empty(t, cfg.Format)
	assert.Equal(t, format.Unknown, cfg.OutputFormat())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "output: report.html\nformat: html\nauthor: Finance Team\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "report.html", cfg.Output)
	assert.Equal(t, format.HTML, cfg.OutputFormat())
	assert.Equal(t, "Finance Team", cfg.Author)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, "author: A\n"))
	require.NoError(t, err)
	assert.Equal(t, workbook.DefaultFilename, cfg.Output)
	assert.Equal(t, "A", cfg.Author)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "outptu: x.docx\n"},
		{"bad format", "format: pdf\n"},
		{"malformed", "output: [unterminated\n"},
		{"empty output", "output: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadFormatIsUnsupported(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "format: pdf\n"))
	assert.ErrorIs(t, err, format.ErrUnsupported)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FINBOOK_AUTHOR", "Env Author")
	t.Setenv("FINBOOK_FORMAT", "markdown")

	cfg, err := Load(writeConfig(t, "author: File Author\n"))
	require.NoError(t, err)
	assert.Equal(t, "Env Author", cfg.Author)
	assert.Equal(t, format.Markdown, cfg.OutputFormat())

	env := FromEnv()
	assert.Equal(t, "Env Author", env.Author)
	assert.Equal(t, workbook.DefaultFilename, env.Output)
}

func TestSave_RoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := &Config{Output: "a.md", Format: "markdown", Author: "A", Company: "B"}
	require.NoError(t, want.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
