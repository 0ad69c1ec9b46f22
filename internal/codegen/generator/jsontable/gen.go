// Package jsontable dumps the key tables as a single JSON document for
// tooling that has no generator of its own.
package jsontable

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Alia5/keytab/internal/codegen/meta"
)

type scancodeJSON struct {
	Name      string  `json:"name"`
	Value     int64   `json:"value"`
	UsagePage *uint16 `json:"usagePage,omitempty"`
	Usage     *uint16 `json:"usage,omitempty"`
}

type keycodeJSON struct {
	Name     string `json:"name"`
	Value    int64  `json:"value"`
	Scancode string `json:"scancode,omitempty"`
}

type tableJSON struct {
	Version      string         `json:"version"`
	NumScancodes int            `json:"numScancodes"`
	ScancodeMask int64          `json:"scancodeMask"`
	Scancodes    []scancodeJSON `json:"scancodes"`
	Keycodes     []keycodeJSON  `json:"keycodes"`
}

// Generate writes keytab.json under outputDir.
func Generate(logger *slog.Logger, outputDir string, md *meta.Metadata) error {
	table := tableJSON{
		Version:      md.Version,
		NumScancodes: md.NumScancodes,
		ScancodeMask: md.ScancodeMask,
	}
	for _, s := range md.Scancodes {
		e := scancodeJSON{Name: s.Name, Value: s.Value}
		if s.HasUsage {
			page, usage := s.UsagePage, s.Usage
			e.UsagePage, e.Usage = &page, &usage
		}
		table.Scancodes = append(table.Scancodes, e)
	}
	for _, k := range md.Keycodes {
		table.Keycodes = append(table.Keycodes, keycodeJSON{Name: k.Name, Value: k.Value, Scancode: k.Scancode})
	}

	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}

	path := filepath.Join(outputDir, "keytab.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("Generated JSON key table", "file", path)
	return nil
}
