package cmd

import (
	"log/slog"

	"github.com/Alia5/keytab/internal/codegen/generator"
)

type Codegen struct {
	Output string `help:"Output directory for generated key tables, one subdirectory per language" default:"./generated" env:"KEYTAB_CODEGEN_OUTPUT"`
	Lang   string `help:"Target language: c, csharp, typescript, rust, json, or 'all'" default:"all" enum:"c,csharp,typescript,rust,json,all" env:"KEYTAB_CODEGEN_LANG"`
}

// Run is called by Kong when the codegen command is executed.
func (c *Codegen) Run(logger *slog.Logger) error {
	logger.Info("Starting key table generation", "output", c.Output, "lang", c.Lang)

	gen := generator.New(c.Output, logger)
	if c.Lang == "all" {
		return gen.GenAll()
	}
	return gen.GenerateLang(c.Lang)
}
