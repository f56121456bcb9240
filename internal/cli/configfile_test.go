package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmanet/pharmacy-console/internal/config"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Env: config.EnvDevelopment,
		ServiceURLs: map[config.Service]string{
			config.ServicePharmacy:   "http://localhost:8000/api",
			config.ServiceUser:       "http://localhost:8001/api",
			config.ServiceMedication: "http://localhost:8002/api",
		},
		MediaBaseURL: "http://localhost:8002",
	}
}

func TestApplyFileConfig(t *testing.T) {
	dir := t.TempDir()
	content := `
service_urls:
  user: http://users.internal/api
media_base_url: https://media.example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o600))

	cfg := newTestConfig()
	require.NoError(t, applyFileConfig(cfg, dir))

	assert.Equal(t, "http://users.internal/api", cfg.ServiceURL(config.ServiceUser))
	assert.Equal(t, "http://localhost:8000/api", cfg.ServiceURL(config.ServicePharmacy))
	assert.Equal(t, "https://media.example.com", cfg.MediaBaseURL)
}

func TestApplyFileConfig_NoFileIsNoop(t *testing.T) {
	cfg := newTestConfig()
	require.NoError(t, applyFileConfig(cfg, t.TempDir()))
	assert.Equal(t, newTestConfig(), cfg)
}

func TestApplyFileConfig_Fails(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed_yaml",
			content: "service_urls: [broken",
		},
		{
			name:    "unknown_service",
			content: "service_urls:\n  billing: http://billing.internal/api",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(tc.content), 0o600))
			assert.Error(t, applyFileConfig(newTestConfig(), dir))
		})
	}
}
