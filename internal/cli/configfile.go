package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pharmanet/pharmacy-console/internal/config"
)

const configFileName = "config.yaml"

// fileConfig is the optional per-user configuration next to the stored
// session. Values set here override what the environment resolved.
type fileConfig struct {
	ServiceURLs  map[string]string `yaml:"service_urls"`
	MediaBaseURL string            `yaml:"media_base_url"`
}

func applyFileConfig(cfg *config.Config, stateDir string) error {
	data, err := os.ReadFile(filepath.Join(stateDir, configFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fileCfg fileConfig
	if err = yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	for service, url := range fileCfg.ServiceURLs {
		if _, ok := cfg.ServiceURLs[config.Service(service)]; !ok {
			return fmt.Errorf("config file names unknown service %q", service)
		}
		cfg.ServiceURLs[config.Service(service)] = url
	}
	if fileCfg.MediaBaseURL != "" {
		cfg.MediaBaseURL = fileCfg.MediaBaseURL
	}

	return nil
}
