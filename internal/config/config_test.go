// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/get-papers-list/internal/pubmed"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, pubmed.DefaultBaseURL, cfg.PubMed.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.PubMed.Timeout)
	assert.Equal(t, "get-papers-list/0.1", cfg.PubMed.UserAgent)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Archive.Enabled())
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "get-papers-list.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
pubmed:
  timeout: 5s
  email: me@example.com
  tool: survey
archive:
  path: runs.db
log:
  level: DEBUG
  format: json
`), 0o644))

	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.PubMed.Timeout)
	assert.Equal(t, "me@example.com", cfg.PubMed.Email)
	assert.Equal(t, "survey", cfg.PubMed.Tool)
	assert.Equal(t, "runs.db", cfg.Archive.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, pubmed.DefaultBaseURL, cfg.PubMed.BaseURL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("GET_PAPERS_LIST_PUBMED_BASE_URL", "http://localhost:9999/eutils")
	t.Setenv("GET_PAPERS_LIST_ARCHIVE_PATH", "/tmp/archive.db")

	cfg, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/eutils", cfg.PubMed.BaseURL)
	assert.Equal(t, "/tmp/archive.db", cfg.Archive.Path)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{"base url not a url", "pubmed.base_url", "not a url", "BaseURL"},
		{"zero timeout", "pubmed.timeout", "0s", "Timeout"},
		{"negative timeout", "pubmed.timeout", "-1s", "Timeout"},
		{"bad email", "pubmed.email", "nobody", "Email"},
		{"unknown level", "log.level", "loud", "Level"},
		{"unknown format", "log.format", "xml", "Format"},
		{"empty user agent", "pubmed.user_agent", "", "UserAgent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
