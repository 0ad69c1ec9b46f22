package cgen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/keytab/internal/codegen/common"
	"github.com/Alia5/keytab/internal/codegen/meta"
)

// Generate writes include/keytab/keytab.h under outputDir.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	major, minor, patch := common.ParseVersion(md.Version)
	logger.Info("Using version", "version", md.Version, "major", major, "minor", minor, "patch", patch)

	includeDir := filepath.Join(outputDir, "include", "keytab")
	if err := os.MkdirAll(includeDir, 0755); err != nil {
		return fmt.Errorf("create include dir: %w", err)
	}

	path := filepath.Join(includeDir, "keytab.h")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	data := struct {
		Notice              string
		Version             string
		Major, Minor, Patch int
		MD                  *meta.Metadata
	}{
		Notice:  common.CommentBlock(common.ZlibNotice, " * "),
		Version: md.Version,
		Major:   major,
		Minor:   minor,
		Patch:   patch,
		MD:      md,
	}

	tmpl := template.Must(template.New("header").Funcs(tplFuncs).Parse(headerTemplate))
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	logger.Info("Generated C header", "file", path)
	return nil
}

var tplFuncs = template.FuncMap{
	"ident": func(name string) string { return common.ToScreamingSnake(name) },
}

const headerTemplate = `/*
{{.Notice}}
 */

/* Generated by keytab codegen. Do not edit. */

#ifndef KEYTAB_H
#define KEYTAB_H

#include <stdint.h>

#define KEYTAB_VERSION_MAJOR {{.Major}}
#define KEYTAB_VERSION_MINOR {{.Minor}}
#define KEYTAB_VERSION_PATCH {{.Patch}}
#define KEYTAB_VERSION "{{.Version}}"

#define KEYTAB_NUM_SCANCODES {{.MD.NumScancodes}}
#define KEYTAB_SCANCODE_MASK (1 << 30)
#define KEYTAB_SCANCODE_TO_KEYCODE(X) ((X) | KEYTAB_SCANCODE_MASK)

typedef enum keytab_scancode {
{{- range .MD.Scancodes}}
    KEYTAB_SCANCODE_{{ident .Name}} = {{.Value}},
{{- end}}
    KEYTAB_SCANCODE_COUNT = KEYTAB_NUM_SCANCODES
} keytab_scancode;

typedef int32_t keytab_keycode;

enum {
{{- range .MD.Keycodes}}
{{- if .Derived}}
    KEYTAB_KEYCODE_{{ident .Name}} = KEYTAB_SCANCODE_TO_KEYCODE(KEYTAB_SCANCODE_{{ident .Scancode}}),
{{- else}}
    KEYTAB_KEYCODE_{{ident .Name}} = {{.Value}},
{{- end}}
{{- end}}
};

#endif /* KEYTAB_H */
`
