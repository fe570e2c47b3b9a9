package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the durable storage for the journal documents.
type Config interface {
	BasePath() (string, error)
}

// LoadConfig resolves the store location from a .weeklog config file or the
// WEEKLOG_PATH environment variable, defaulting to ~/.weeklog.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.weeklog.db")
	viper.SetConfigName(".weeklog") // .yaml is implicit
	viper.SetEnvPrefix("WEEKLOG")
	viper.AutomaticEnv()

	if override := os.Getenv("WEEKLOG_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &fileConfig{Path: viper.GetString("path")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() (string, error) {
	expanded, err := homedir.Expand(f.Path)
	if err != nil {
		return "", fmt.Errorf("store: expand path %q: %w", f.Path, err)
	}
	return expanded, nil
}
