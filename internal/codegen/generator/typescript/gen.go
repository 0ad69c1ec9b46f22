package typescript

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/keytab/internal/codegen/common"
	"github.com/Alia5/keytab/internal/codegen/meta"
)

func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	srcDir := filepath.Join(outputDir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", srcDir, err)
	}

	data := struct {
		Notice string
		MD     *meta.Metadata
	}{
		Notice: common.CommentBlock(common.ZlibNotice, " * "),
		MD:     md,
	}

	if err := render(filepath.Join(outputDir, "package.json"), packageTemplate, data); err != nil {
		return err
	}
	if err := render(filepath.Join(srcDir, "index.ts"), indexTemplate, data); err != nil {
		return err
	}

	logger.Info("Generated TypeScript key tables", "dir", outputDir)
	return nil
}

func render(path, text string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	tmpl := template.Must(template.New(filepath.Base(path)).Funcs(template.FuncMap{
		"ident": common.PascalIdent,
	}).Parse(text))
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

const packageTemplate = `{
  "name": "keytab",
  "version": "{{.MD.Version}}",
  "description": "Keyboard scancode and keycode tables",
  "license": "Zlib",
  "main": "dist/index.js",
  "types": "dist/index.d.ts",
  "scripts": {
    "build": "tsc"
  },
  "devDependencies": {
    "typescript": "^5.4.0"
  }
}
`

const indexTemplate = `/*
{{.Notice}}
 */

// Generated by keytab codegen. Do not edit.

export const NUM_SCANCODES = {{.MD.NumScancodes}};
export const SCANCODE_MASK = 1 << 30;

export enum Scancode {
{{- range .MD.Scancodes}}
  {{ident .Name}} = {{.Value}},
{{- end}}
}

export enum Keycode {
{{- range .MD.Keycodes}}
{{- if .Derived}}
  {{ident .Name}} = Scancode.{{ident .Scancode}} | (1 << 30),
{{- else}}
  {{ident .Name}} = {{.Value}},
{{- end}}
{{- end}}
}

export function scancodeToKeycode(scancode: Scancode): Keycode {
  return (scancode | SCANCODE_MASK) as Keycode;
}

export function isScancodeKeycode(keycode: Keycode): boolean {
  return (keycode & SCANCODE_MASK) !== 0;
}
`
