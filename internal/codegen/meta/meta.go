package meta

import (
	"github.com/Alia5/keytab/keycode"
)

// Entry is one named table value. Name is the canonical text form
// ("KP_ENTER", "a"), which generators turn into identifiers.
type Entry struct {
	Name  string
	Value int64
}

// ScancodeEntry adds the HID usage of a physical key.
type ScancodeEntry struct {
	Entry
	UsagePage uint16
	Usage     uint16
	HasUsage  bool
}

// KeycodeEntry records, for derived keycodes, the scancode they are built
// from, so generators can emit the derivation instead of a bare number.
type KeycodeEntry struct {
	Entry
	Derived  bool
	Scancode string
}

// Metadata holds the full table in the form generators consume.
// Shared between generator orchestrator and language-specific generators.
type Metadata struct {
	Version      string
	NumScancodes int
	ScancodeMask int64
	Scancodes    []ScancodeEntry
	Keycodes     []KeycodeEntry
}

// Collect reads the table from the keycode package. ScancodeUnknown and
// KeycodeUnknown are included first.
func Collect(version string) *Metadata {
	md := &Metadata{
		Version:      version,
		NumScancodes: keycode.NumScancodes,
		ScancodeMask: keycode.ScancodeMask,
	}

	md.Scancodes = append(md.Scancodes, ScancodeEntry{Entry: Entry{Name: keycode.ScancodeUnknown.String()}})
	for _, s := range keycode.Scancodes() {
		e := ScancodeEntry{Entry: Entry{Name: s.String(), Value: int64(s)}}
		e.UsagePage, e.Usage, e.HasUsage = s.Usage()
		md.Scancodes = append(md.Scancodes, e)
	}

	md.Keycodes = append(md.Keycodes, KeycodeEntry{Entry: Entry{Name: keycode.KeycodeUnknown.String()}})
	for _, k := range keycode.Keycodes() {
		e := KeycodeEntry{Entry: Entry{Name: k.String(), Value: int64(k)}}
		if s, ok := k.Scancode(); ok {
			e.Derived = true
			e.Scancode = s.String()
		}
		md.Keycodes = append(md.Keycodes, e)
	}
	return md
}
