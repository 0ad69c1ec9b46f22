// Package config holds the kong command line definition of keytab.
package config

import (
	"github.com/Alia5/keytab/internal/cmd"
	"github.com/Alia5/keytab/internal/log"

	"github.com/alecthomas/kong"
)

// CLI is the root command. Flags may also come from JSON, YAML or TOML
// configuration files; see configpaths.ConfigCandidatePaths.
type CLI struct {
	Log        log.Options      `embed:"" prefix:"log."`
	Version    kong.VersionFlag `help:"Print version and exit"`
	ConfigFile string           `name:"config" help:"Configuration file to load before the default locations" type:"path" env:"KEYTAB_CONFIG"`

	List     cmd.List          `cmd:"" help:"List scancodes and keycodes"`
	Lookup   cmd.Lookup        `cmd:"" help:"Look up keys by name, character or number"`
	Codegen  cmd.Codegen       `cmd:"" help:"Generate the key tables for other languages"`
	Bindings cmd.Bindings      `cmd:"" help:"Work with key binding files"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
