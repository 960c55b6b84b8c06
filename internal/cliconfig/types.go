package cliconfig

import (
	"errors"
	"fmt"
	"net/url"
)

// ProbeConfig represents the complete configuration for wsprobe.
type ProbeConfig struct {
	// Connection settings
	URL string `yaml:"url" json:"url"`

	// Credentials sent in the auth frame
	PlayerID   string `yaml:"playerId" json:"playerId"`
	PlayerName string `yaml:"playerName" json:"playerName"`
	Token      string `yaml:"token" json:"token"`

	// Output settings
	Trace bool `yaml:"trace" json:"trace"`
	JSON  bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records the keys present in a loaded file, so that an
	// explicit false can override a true from a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceFlag    = "flag"
)

// Validate checks that the configuration can be used to run a probe.
func (c *ProbeConfig) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("url %q is invalid: %w", c.URL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("url %q must use the ws or wss scheme", c.URL)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", c.URL)
	}
	if c.PlayerID == "" {
		return errors.New("playerId must not be empty")
	}
	return nil
}

// Source returns where the named value came from, or SourceDefault.
func (c *ProbeConfig) Source(key string) string {
	if s, ok := c.Sources[key]; ok {
		return s
	}
	return SourceDefault
}
