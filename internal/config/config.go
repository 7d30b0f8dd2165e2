// Package config resolves runtime settings from the environment, a .env file
// and an optional dorkcraft.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "DORKCRAFT"
	configName = "dorkcraft"
)

// Config holds the settings for one run
type Config struct {
	LogLevel    log.Level
	Accessible  bool
	Clipboard   string
	RootDomains bool
	Spinner     bool
}

// Load reads .env (if present), then resolves DORKCRAFT_* variables and an
// optional dorkcraft.yaml from the working directory or ~/.config/dorkcraft.
// dirs overrides the config file search path.
func Load(dirs ...string) (Config, error) {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log_level", "warn")
	v.SetDefault("accessible", false)
	v.SetDefault("clipboard", "system")
	v.SetDefault("root_domains", false)
	v.SetDefault("spinner", true)

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	if len(dirs) == 0 {
		dirs = defaultConfigDirs()
	}
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	level, err := log.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", v.GetString("log_level"), err)
	}

	return Config{
		LogLevel:    level,
		Accessible:  v.GetBool("accessible"),
		Clipboard:   v.GetString("clipboard"),
		RootDomains: v.GetBool("root_domains"),
		Spinner:     v.GetBool("spinner"),
	}, nil
}

func defaultConfigDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", configName))
	}
	return dirs
}
