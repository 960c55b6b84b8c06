// Package cliconfig provides configuration types and loading for the wsprobe
// CLI.
//
// It implements a layered configuration system with the following precedence
// (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (WSPROBE_* prefix)
//  3. Local config file (.wsproberc.yaml in current directory)
//  4. Global config file (~/.config/wsprobe/config.yaml)
//  5. Default values
//
// The defaults reproduce the fixed address and credentials of the game
// server's test client, so running wsprobe with no configuration at all
// behaves exactly like it.
//
// Key types:
//
//   - ProbeConfig: Complete configuration structure for the CLI
//   - ConfigError: A config file that could not be parsed
//
// Key functions:
//
//   - LoadAll: Loads and merges configuration from all sources
//   - FindLocalConfig: Locates .wsproberc.yaml in the current directory
//   - FindGlobalConfig: Locates the global config file
//   - LoadEnvConfig: Applies environment variable overrides
package cliconfig
