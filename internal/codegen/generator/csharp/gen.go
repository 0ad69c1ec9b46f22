package csharp

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
	projectDir := filepath.Join(outputDir, "Keytab")
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", projectDir, err)
	}

	data := struct {
		Notice string
		MD     *meta.Metadata
	}{
		Notice: common.CommentBlock(common.ZlibNotice, "// "),
		MD:     md,
	}

	files := []struct {
		name string
		tmpl string
	}{
		{"Keytab.csproj", projectTemplate},
		{"KeyTable.cs", tableTemplate},
	}
	for _, file := range files {
		if err := render(filepath.Join(projectDir, file.name), file.tmpl, data); err != nil {
			return err
		}
		logger.Debug("Generated C# file", "file", file.name)
	}

	logger.Info("Generated C# key tables", "dir", projectDir)
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

const projectTemplate = `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <Nullable>enable</Nullable>
    <PackageId>Keytab</PackageId>
    <Version>{{.MD.Version}}</Version>
    <PackageLicenseExpression>Zlib</PackageLicenseExpression>
    <Description>Keyboard scancode and keycode tables</Description>
  </PropertyGroup>

</Project>
`

const tableTemplate = `{{.Notice}}

// <auto-generated>
// Generated by keytab codegen. Do not edit.
// </auto-generated>

namespace Keytab;

public static class KeyTable
{
    public const int NumScancodes = {{.MD.NumScancodes}};
    public const int ScancodeMask = 1 << 30;

    public static Keycode ToKeycode(this Scancode scancode) => (Keycode)((int)scancode | ScancodeMask);

    public static bool IsScancode(this Keycode keycode) => ((int)keycode & ScancodeMask) != 0;
}

public enum Scancode : int
{
{{- range .MD.Scancodes}}
    {{ident .Name}} = {{.Value}},
{{- end}}
}

public enum Keycode : int
{
{{- range .MD.Keycodes}}
{{- if .Derived}}
    {{ident .Name}} = (int)Scancode.{{ident .Scancode}} | KeyTable.ScancodeMask,
{{- else}}
    {{ident .Name}} = {{.Value}},
{{- end}}
{{- end}}
}
`
