package cliconfig

import "os"

// Environment variable names
const (
	EnvURL        = "WSPROBE_URL"
	EnvPlayerID   = "WSPROBE_PLAYER_ID"
	EnvPlayerName = "WSPROBE_PLAYER_NAME"
	EnvToken      = "WSPROBE_TOKEN"
	EnvTrace      = "WSPROBE_TRACE"
	EnvJSON       = "WSPROBE_JSON"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *ProbeConfig) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvURL); v != "" {
		cfg.URL = v
		cfg.Sources["url"] = SourceEnv
	}
	if v := os.Getenv(EnvPlayerID); v != "" {
		cfg.PlayerID = v
		cfg.Sources["playerId"] = SourceEnv
	}
	if v := os.Getenv(EnvPlayerName); v != "" {
		cfg.PlayerName = v
		cfg.Sources["playerName"] = SourceEnv
	}
	// An empty token is meaningful, so presence is what counts.
	if v, ok := os.LookupEnv(EnvToken); ok {
		cfg.Token = v
		cfg.Sources["token"] = SourceEnv
	}
	if v := os.Getenv(EnvTrace); v != "" {
		cfg.Trace = parseBool(v)
		cfg.Sources["trace"] = SourceEnv
	}
	if v := os.Getenv(EnvJSON); v != "" {
		cfg.JSON = parseBool(v)
		cfg.Sources["json"] = SourceEnv
	}
}

func parseBool(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}
