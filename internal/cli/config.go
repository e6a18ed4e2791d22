package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/layouteng/gridsnap/pkg/errors"
	"github.com/layouteng/gridsnap/pkg/match"
)

// Config is the on-disk gridsnap configuration.
type Config struct {
	// Match holds the snap tuning used by resolve and demo.
	Match match.Options `toml:"match"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Match: match.DefaultOptions()}
}

// LoadConfig reads the configuration from path. An empty path falls back
// to the default location (~/.config/gridsnap/gridsnap.toml); a missing
// default file is not an error, a missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, configFile)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			if !explicit {
				return DefaultConfig(), nil
			}
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
