package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/Alia5/keytab/internal/codegen/common"
	"github.com/Alia5/keytab/internal/codegen/generator/cgen"
	"github.com/Alia5/keytab/internal/codegen/generator/csharp"
	"github.com/Alia5/keytab/internal/codegen/generator/jsontable"
	"github.com/Alia5/keytab/internal/codegen/generator/rust"
	"github.com/Alia5/keytab/internal/codegen/generator/typescript"
	"github.com/Alia5/keytab/internal/codegen/meta"
)

type Generator struct {
	outputDir string
	logger    *slog.Logger
}

type LanguageGenerator func(logger *slog.Logger, outputDir string, md *meta.Metadata) error

var generators = map[string]LanguageGenerator{
	"c":          cgen.Generate,
	"csharp":     csharp.Generate,
	"json":       jsontable.Generate,
	"rust":       rust.Generate,
	"typescript": typescript.Generate,
}

// Languages lists the supported targets in sorted order.
func Languages() []string {
	langs := make([]string, 0, len(generators))
	for k := range generators {
		langs = append(langs, k)
	}
	sort.Strings(langs)
	return langs
}

func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
	}
}

func (g *Generator) GenAll() error {
	for _, lang := range Languages() {
		if err := g.GenerateLang(lang); err != nil {
			return fmt.Errorf("generate %s tables: %w", lang, err)
		}
	}
	return nil
}

func (g *Generator) GenerateLang(lang string) error {
	gen, ok := generators[lang]
	if !ok {
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}

	g.logger.Info("Generating key tables", "language", lang)

	md, err := g.Collect()
	if err != nil {
		return err
	}

	outputPath := filepath.Join(g.outputDir, lang)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", lang, err)
	}

	if err := gen(g.logger, outputPath, md); err != nil {
		return err
	}
	if err := common.GenerateLicense(g.logger, outputPath); err != nil {
		return err
	}
	if err := common.GenerateReadme(g.logger, outputPath, lang); err != nil {
		return err
	}

	g.logger.Info("Key table generation complete", "language", lang, "output", outputPath)
	return nil
}

func (g *Generator) Collect() (*meta.Metadata, error) {
	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}
	md := meta.Collect(version)
	g.logger.Debug("Collected key tables",
		"version", md.Version,
		"scancodes", len(md.Scancodes),
		"keycodes", len(md.Keycodes))
	return md, nil
}
