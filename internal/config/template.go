package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/holoterm/holoterm/internal/errors"
	"github.com/holoterm/holoterm/internal/fileperms"
)

const templateHeader = `# holoterm configuration
# Generated by 'holoterm config init'. Edits are picked up live while
# the terminal is running.
`

// WriteDefault writes the default configuration to path, refusing to
// clobber an existing file.
func WriteDefault(path string) error {
	if path == "" {
		path = Path()
	}

	if _, err := os.Stat(path); err == nil {
		return errors.Configf("config file already exists at %s", path)
	}

	body, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfiguration, "marshaling default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), fileperms.ConfigDir); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfiguration, "creating config directory")
	}

	if err := os.WriteFile(path, append([]byte(templateHeader), body...), fileperms.ConfigFile); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfiguration, "writing config file")
	}

	return nil
}
