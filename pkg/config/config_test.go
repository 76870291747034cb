package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig drops a config file into a temp dir and returns its path
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

database:
  dsn: "file:test.db?cache=shared"
  max_open_conns: 20

schedule:
  scrape_interval: 30m
  max_workers: 10

source:
  url: "https://example.com/movies"
  user_agent: "TestBot/1.0"
  timeout: 10s

smtp:
  host: smtp.example.com
  port: 465
  user: mailer
  password: secret
  from: noreply@example.com
  ssl: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db?cache=shared", cfg.Database.DSN)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.Schedule.ScrapeInterval)
	assert.Equal(t, 10, cfg.Schedule.MaxWorkers)
	assert.Equal(t, "https://example.com/movies", cfg.Source.URL)
	assert.Equal(t, "TestBot/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, "secret", cfg.SMTP.Password)
	assert.Equal(t, "noreply@example.com", cfg.SMTP.From)
	assert.True(t, cfg.SMTP.SSL)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
source:
  url: "https://example.com/movies"

smtp:
  host: smtp.example.com
  from: noreply@example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:screenwatch.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 15*time.Minute, cfg.Schedule.ScrapeInterval)
	assert.Equal(t, 5, cfg.Schedule.MaxWorkers)
	assert.Equal(t, "Screenwatch/1.0", cfg.Source.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.SSL)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_SMTP_PASSWORD", "from-env")

	path := writeConfig(t, `
source:
  url: "https://example.com/movies"

smtp:
  host: smtp.example.com
  from: noreply@example.com
  password: ${TEST_SMTP_PASSWORD}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SMTP.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "source: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing source url",
			content: `
smtp:
  host: smtp.example.com
  from: noreply@example.com
`,
			wantErr: "source.url is required",
		},
		{
			name: "non-http source url",
			content: `
source:
  url: "ftp://example.com/movies"
smtp:
  host: smtp.example.com
  from: noreply@example.com
`,
			wantErr: "source.url must be an http(s) URL",
		},
		{
			name: "missing smtp host",
			content: `
source:
  url: "https://example.com/movies"
smtp:
  from: noreply@example.com
`,
			wantErr: "smtp.host is required",
		},
		{
			name: "missing smtp from",
			content: `
source:
  url: "https://example.com/movies"
smtp:
  host: smtp.example.com
`,
			wantErr: "smtp.from is required",
		},
		{
			name: "interval too short",
			content: `
schedule:
  scrape_interval: 10s
source:
  url: "https://example.com/movies"
smtp:
  host: smtp.example.com
  from: noreply@example.com
`,
			wantErr: "schedule.scrape_interval must be at least 1 minute",
		},
		{
			name: "smtp port out of range",
			content: `
source:
  url: "https://example.com/movies"
smtp:
  host: smtp.example.com
  from: noreply@example.com
  port: 99999
`,
			wantErr: "smtp.port must be a valid port number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_GetServerConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":3000"
  timeout: 5s
source:
  url: "https://example.com/movies"
smtp:
  host: smtp.example.com
  from: noreply@example.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":3000", listen)
	assert.Equal(t, 5*time.Second, timeout)
}
