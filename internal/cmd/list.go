package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/keytab/keycode"

	toml "github.com/pelletier/go-toml"
	"golang.org/x/term"
	yaml "gopkg.in/yaml.v3"
)

// List prints the scancode and keycode tables.
type List struct {
	Table  string `arg:"" optional:"" help:"Table to print" enum:"scancodes,keycodes,all" default:"all"`
	Format string `help:"Output format" enum:"text,json,yaml,toml" default:"text" env:"KEYTAB_LIST_FORMAT"`
}

type tableEntry struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Value    int64  `json:"value" yaml:"value" toml:"value"`
	Hex      string `json:"hex" yaml:"hex" toml:"hex"`
	Usage    string `json:"usage,omitempty" yaml:"usage,omitempty" toml:"usage,omitempty"`
	Scancode string `json:"scancode,omitempty" yaml:"scancode,omitempty" toml:"scancode,omitempty"`
}

type tableDump struct {
	Scancodes []tableEntry `json:"scancodes,omitempty" yaml:"scancodes,omitempty" toml:"scancodes,omitempty"`
	Keycodes  []tableEntry `json:"keycodes,omitempty" yaml:"keycodes,omitempty" toml:"keycodes,omitempty"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	width := 0
	if tty {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	logger.Debug("Listing key table", "table", l.Table, "format", l.Format, "tty", tty, "width", width)
	return l.write(os.Stdout, tty, width)
}

func (l *List) write(w io.Writer, tty bool, width int) error {
	dump := l.collect()

	var data []byte
	var err error
	switch l.Format {
	case "json":
		data, err = json.MarshalIndent(dump, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(dump)
	case "toml":
		data, err = toml.Marshal(dump)
	default:
		return writeText(w, dump, tty, width)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", l.Format, err)
	}
	_, err = w.Write(data)
	return err
}

func (l *List) collect() tableDump {
	var dump tableDump
	if l.Table != "keycodes" {
		for _, s := range append([]keycode.Scancode{keycode.ScancodeUnknown}, keycode.Scancodes()...) {
			e := tableEntry{Name: s.String(), Value: int64(s), Hex: fmt.Sprintf("%#x", int32(s))}
			if page, id, ok := s.Usage(); ok {
				e.Usage = formatUsage(page, id)
			}
			dump.Scancodes = append(dump.Scancodes, e)
		}
	}
	if l.Table != "scancodes" {
		for _, k := range append([]keycode.Keycode{keycode.KeycodeUnknown}, keycode.Keycodes()...) {
			e := tableEntry{Name: k.String(), Value: int64(k), Hex: fmt.Sprintf("%#x", int32(k))}
			if s, ok := k.Scancode(); ok {
				e.Scancode = s.String()
			}
			dump.Keycodes = append(dump.Keycodes, e)
		}
	}
	return dump
}

func formatUsage(page, id uint16) string {
	return fmt.Sprintf("0x%02x:0x%02x", page, id)
}

// narrowWidth is the terminal width below which the extra column is dropped.
const narrowWidth = 60

// writeText prints aligned columns on a terminal and tab-separated rows
// otherwise, so the output stays easy to cut(1).
func writeText(w io.Writer, dump tableDump, tty bool, width int) error {
	out := w
	var tw *tabwriter.Writer
	if tty {
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		out = tw
	}
	extra := !tty || width == 0 || width >= narrowWidth

	section := func(title, extraTitle string, entries []tableEntry, extraOf func(tableEntry) string) {
		if len(entries) == 0 {
			return
		}
		if tty {
			if extra {
				fmt.Fprintf(out, "%s\tVALUE\tHEX\t%s\n", strings.ToUpper(title), extraTitle)
			} else {
				fmt.Fprintf(out, "%s\tVALUE\tHEX\n", strings.ToUpper(title))
			}
		}
		for _, e := range entries {
			if extra {
				fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", e.Name, e.Value, e.Hex, extraOf(e))
			} else {
				fmt.Fprintf(out, "%s\t%d\t%s\n", e.Name, e.Value, e.Hex)
			}
		}
	}

	section("scancode", "USAGE", dump.Scancodes, func(e tableEntry) string { return e.Usage })
	if tty && len(dump.Scancodes) > 0 && len(dump.Keycodes) > 0 {
		fmt.Fprintln(out)
	}
	section("keycode", "SCANCODE", dump.Keycodes, func(e tableEntry) string { return e.Scancode })

	if tw != nil {
		return tw.Flush()
	}
	return nil
}
