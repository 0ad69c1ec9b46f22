package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/keytab/keycode"
)

// Lookup resolves key names, characters and numbers against both tables.
type Lookup struct {
	Keys []string `arg:"" name:"key" help:"Key names (KP_ENTER), characters (a, /) or numbers (88, 0x40000058)"`
}

// Run is called by Kong when the lookup command is executed.
func (l *Lookup) Run(logger *slog.Logger) error {
	var failed int
	for _, key := range l.Keys {
		if err := lookup(os.Stdout, key); err != nil {
			logger.Error("Lookup failed", "key", key, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d keys not found", failed, len(l.Keys))
	}
	return nil
}

// lookup prints every interpretation of key. It fails only when key is
// neither a scancode nor a keycode.
func lookup(w io.Writer, key string) error {
	s, serr := keycode.ParseScancode(key)
	k, kerr := keycode.ParseKeycode(key)
	if serr != nil && kerr != nil {
		return errors.Join(serr, kerr)
	}
	if serr == nil {
		fmt.Fprintln(w, describeScancode(s))
	}
	if kerr == nil {
		fmt.Fprintln(w, describeKeycode(k))
	}
	return nil
}

func describeScancode(s keycode.Scancode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "scancode %s = %d (%#x)", s, int32(s), int32(s))
	if page, id, ok := s.Usage(); ok {
		fmt.Fprintf(&b, " usage %s", formatUsage(page, id))
	}
	if k := keycode.DefaultKeycode(s); k != keycode.KeycodeUnknown {
		fmt.Fprintf(&b, " default-keycode %s", k)
	}
	return b.String()
}

func describeKeycode(k keycode.Keycode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "keycode %s = %d (%#x)", k, int32(k), int32(k))
	if s, ok := k.Scancode(); ok {
		fmt.Fprintf(&b, " from-scancode %s", s)
	} else if r, ok := k.Rune(); ok {
		fmt.Fprintf(&b, " char %q", r)
	}
	if s, ok := keycode.DefaultScancode(k); ok {
		fmt.Fprintf(&b, " default-scancode %s", s)
	}
	return b.String()
}
