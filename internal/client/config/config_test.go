package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func defaults() *Config {
	var c Config
	c.LoadDefaults()
	return &c
}

// withoutDotEnv points the dotenv lookup at a file that does not exist.
func withoutDotEnv(t *testing.T) {
	t.Helper()
	orig := dotEnvFile
	dotEnvFile = filepath.Join(t.TempDir(), "absent.env")
	t.Cleanup(func() { dotEnvFile = orig })
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "https://datav-app-api.onrender.com", c.APIURL)
	assert.Equal(t, c.APIURL, c.LegacyAPIURL)
	assert.Equal(t, VariantFull, c.Variant)
	assert.Equal(t, ".datav", c.DataDir)
	assert.Zero(t, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, TracingOff, c.Tracing)
}

func TestBaseURL(t *testing.T) {
	c := &Config{APIURL: "https://a", LegacyAPIURL: "https://l", Variant: VariantFull}
	assert.Equal(t, "https://a", c.BaseURL())
	c.Variant = VariantLegacy
	assert.Equal(t, "https://l", c.BaseURL())
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"api_url":         "http://localhost:8000",
		"request_timeout": "15s",
		"tracing":         "stdout",
	})

	cfg := defaults()
	require.NoError(t, parseJSON(cfg, []string{"-config", path}))

	want := defaults()
	want.APIURL = "http://localhost:8000"
	want.RequestTimeout = 15 * time.Second
	want.Tracing = TracingStdout
	assert.Empty(t, cmp.Diff(want, cfg))

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, nil))
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		require.Error(t, parseJSON(defaults(), []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJSON(defaults(), []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("DATAV_API_URL", "https://env.example")
	t.Setenv("DATAV_VARIANT", "legacy")
	t.Setenv("DATAV_REQUEST_TIMEOUT", "2m")
	t.Setenv("DATAV_LOG_LEVEL", "debug")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, ""))

	assert.Equal(t, "https://env.example", cfg.APIURL)
	assert.Equal(t, VariantLegacy, cfg.Variant)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
}

func TestParseEnv_BadTimeout(t *testing.T) {
	t.Setenv("DATAV_REQUEST_TIMEOUT", "soon")
	require.Error(t, parseEnv(defaults(), ""))
}

func TestParseEnv_DotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATAV_DATA_DIR=/from/dotenv\nDATAV_TRACING=otlp\n"), 0o600))

	t.Setenv("DATAV_DATA_DIR", "/from/env")
	// registered so t.Setenv restores it after godotenv sets it
	t.Setenv("DATAV_TRACING", "")
	require.NoError(t, os.Unsetenv("DATAV_TRACING"))

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, path))
	assert.Equal(t, "/from/env", cfg.DataDir)
	assert.Equal(t, TracingOTLP, cfg.Tracing)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(c *Config)
		wantErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:8000", "-d", "/tmp/dv", "-t", "10"},
			want: func(c *Config) {
				c.APIURL = "http://127.0.0.1:8000"
				c.DataDir = "/tmp/dv"
				c.RequestTimeout = 10 * time.Second
			},
		},
		{
			name: "url goes to legacy when -v legacy",
			args: []string{"-a", "http://old", "-v", "legacy"},
			want: func(c *Config) {
				c.Variant = VariantLegacy
				c.LegacyAPIURL = "http://old"
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "-d", "data"},
			want: func(c *Config) { c.DataDir = "data" },
		},
		{name: "bad timeout", args: []string{"-t", "abc"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, cfg))
		})
	}
}

func TestLoad_Precedence(t *testing.T) {
	withoutDotEnv(t)

	path := writeTempJSON(t, map[string]any{
		"api_url":   "http://json",
		"data_dir":  "json-dir",
		"log_level": "warn",
	})
	t.Setenv("DATAV_DATA_DIR", "env-dir")
	t.Setenv("DATAV_LOG_LEVEL", "error")

	cfg, err := Load([]string{"-c", path, "-d", "flag-dir"})
	require.NoError(t, err)

	assert.Equal(t, "http://json", cfg.APIURL)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "flag-dir", cfg.DataDir)
}

func TestLoad_PropagatesErrors(t *testing.T) {
	withoutDotEnv(t)

	_, err := Load([]string{"-t", "x"})
	require.Error(t, err)

	_, err = Load([]string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.Error(t, err)
}
