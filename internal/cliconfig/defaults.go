package cliconfig

import "github.com/mazeserver/devtools/pkg/probe"

// NewDefault creates a new ProbeConfig with the built-in test client's
// endpoint and identity.
func NewDefault() *ProbeConfig {
	cfg := &ProbeConfig{
		URL:        probe.DefaultURL,
		PlayerID:   probe.DefaultPlayerID,
		PlayerName: probe.DefaultPlayerName,
		Sources:    make(map[string]string),
	}

	for _, key := range []string{"url", "playerId", "playerName", "token", "trace", "json"} {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}
