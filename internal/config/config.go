// Package config resolves server credentials and composition defaults from
// the environment. A .env file in the working directory is honored when
// present.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envServer      = "TOOT_SERVER"
	envAccessToken = "TOOT_ACCESS_TOKEN"
	envEditor      = "TOOT_EDITOR"
)

// Config holds everything needed to reach the server.
type Config struct {
	Server      string
	AccessToken string
	Editor      string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Server:      strings.TrimSpace(os.Getenv(envServer)),
		AccessToken: strings.TrimSpace(os.Getenv(envAccessToken)),
		Editor:      DefaultEditor(),
	}

	var missing []string
	if cfg.Server == "" {
		missing = append(missing, envServer)
	}
	if cfg.AccessToken == "" {
		missing = append(missing, envAccessToken)
	}

	if len(missing) > 0 {
		return Config{}, MissingEnvError{Variables: missing}
	}

	return cfg, nil
}

// DefaultEditor returns the editor command used when --editor is given
// without a value. TOOT_EDITOR takes precedence over EDITOR.
func DefaultEditor() string {
	if v := strings.TrimSpace(os.Getenv(envEditor)); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("EDITOR"))
}
