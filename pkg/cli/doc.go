// Package cli provides the command-line interfaces of the devtools binaries.
//
// Each binary has its own root command:
//   - wsprobe: Connect to the game server, authenticate and print every event
//   - filemerge: Concatenate files sharing a suffix into one output file
//
// wsprobe carries a version subcommand; filemerge, whose first argument is a
// free-form suffix, only has --version.
//
// Usage:
//
//	wsprobe
//	wsprobe --url ws://localhost:9000/ --player-id bot_7 --json
//	wsprobe -H "Origin:http://localhost" --trace
//	filemerge .txt merged.txt
//	filemerge .go all.go --no-recursive -e main.go gen.go util.go
//	filemerge .md docs.md -C ./docs
package cli
