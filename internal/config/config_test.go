package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BIDS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 100.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "Airline Bids", cfg.Sheet.Name)
	assert.Equal(t, 11, cfg.Sheet.HeaderRow)
	assert.Equal(t, 12, cfg.Sheet.DataStartRow)
	assert.Equal(t, 3, cfg.Sheet.StartColumn)
	assert.Equal(t, int64(20971520), cfg.Upload.MaxSizeBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIDS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("BIDS_SERVER_PORT", "9090")
	t.Setenv("BIDS_SHEET_NAME", "Bid Sheet Q3")
	t.Setenv("BIDS_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "Bid Sheet Q3", cfg.Sheet.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FileOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 3000
sheet:
  name: File Sheet
  header_row: 11
  data_start_row: 12
  start_column: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("BIDS_CONFIG_FILE", path)
	t.Setenv("BIDS_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "File Sheet", cfg.Sheet.Name)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "port out of range",
			env:  map[string]string{"BIDS_SERVER_PORT": "70000"},
			want: "invalid server port",
		},
		{
			name: "data start row before header row",
			env:  map[string]string{"BIDS_SHEET_DATA_START_ROW": "5"},
			want: "must come after header row",
		},
		{
			name: "zero start column",
			env:  map[string]string{"BIDS_SHEET_START_COLUMN": "0"},
			want: "invalid start column",
		},
		{
			name: "zero upload limit",
			env:  map[string]string{"BIDS_UPLOAD_MAX_SIZE_BYTES": "0"},
			want: "invalid upload size limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BIDS_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))
	t.Setenv("BIDS_CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}
