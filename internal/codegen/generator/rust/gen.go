package rust

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/keytab/internal/codegen/common"
	"github.com/Alia5/keytab/internal/codegen/meta"
)

// Generate writes a keytab crate: Cargo.toml and src/lib.rs.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	srcDir := filepath.Join(outputDir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return fmt.Errorf("create src dir: %w", err)
	}

	data := struct {
		Notice string
		MD     *meta.Metadata
	}{
		Notice: common.CommentBlock(common.ZlibNotice, "// "),
		MD:     md,
	}

	if err := render(filepath.Join(outputDir, "Cargo.toml"), cargoTemplate, data); err != nil {
		return err
	}
	if err := render(filepath.Join(srcDir, "lib.rs"), libTemplate, data); err != nil {
		return err
	}

	logger.Info("Generated Rust key tables", "dir", outputDir)
	return nil
}

func render(path, text string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	tmpl := template.Must(template.New(filepath.Base(path)).Funcs(template.FuncMap{
		"ident": common.ScreamingIdent,
	}).Parse(text))
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}
	return nil
}

const cargoTemplate = `[package]
name = "keytab"
version = "{{.MD.Version}}"
edition = "2021"
license = "Zlib"
description = "Keyboard scancode and keycode tables"

[dependencies]
`

const libTemplate = `{{.Notice}}

//! Keyboard scancode and keycode tables.
//! Generated by keytab codegen. Do not edit.

pub type Scancode = i32;
pub type Keycode = i32;

pub const NUM_SCANCODES: usize = {{.MD.NumScancodes}};
pub const SCANCODE_MASK: i32 = 1 << 30;

pub const fn scancode_to_keycode(scancode: Scancode) -> Keycode {
    scancode | SCANCODE_MASK
}

pub mod scancode {
    use super::Scancode;
{{range .MD.Scancodes}}
    pub const {{ident .Name}}: Scancode = {{.Value}};
{{- end}}
}

pub mod keycode {
    use super::{scancode, scancode_to_keycode, Keycode};
{{range .MD.Keycodes}}
{{- if .Derived}}
    pub const {{ident .Name}}: Keycode = scancode_to_keycode(scancode::{{ident .Scancode}});
{{- else}}
    pub const {{ident .Name}}: Keycode = {{.Value}};
{{- end}}
{{- end}}
}
`
