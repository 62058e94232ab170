package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvClientID     = "GOOGLE_APP_CLIENT_ID"
	EnvClientSecret = "GOOGLE_APP_CLIENT_SECRET"
	EnvRefreshToken = "GOOGLE_APP_REFRESH_TOKEN"
	EnvLogFile      = "WORKSPACE_MCP_LOG_FILE"
	EnvTimezone     = "WORKSPACE_MCP_TIMEZONE"
)

// Config holds the server configuration resolved from the environment.
type Config struct {
	// Google OAuth2 application credentials and the refresh token for
	// the delegated account. All three are required.
	ClientID     string
	ClientSecret string
	RefreshToken string

	// LogFile is the path logs are appended to. Empty disables logging;
	// stdout is owned by the stdio transport and never used for logs.
	LogFile string

	// Timezone is the IANA zone paired with calendar event datetimes.
	Timezone string
}

// Load reads configuration from a .env file (when present) and the
// process environment. envFile selects an explicit file; when empty the
// default ".env" is tried and may be absent.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ClientID:     os.Getenv(EnvClientID),
		ClientSecret: os.Getenv(EnvClientSecret),
		RefreshToken: os.Getenv(EnvRefreshToken),
		LogFile:      os.Getenv(EnvLogFile),
		Timezone:     resolveTimezone(os.Getenv(EnvTimezone)),
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{EnvClientID, cfg.ClientID},
		{EnvClientSecret, cfg.ClientSecret},
		{EnvRefreshToken, cfg.RefreshToken},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// resolveTimezone picks the zone used for calendar event datetimes:
// explicit configuration wins, then the system zone when it carries a
// real IANA name, then UTC.
func resolveTimezone(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	return "UTC"
}
