// Package binding stores which keys trigger which named action, and reads
// and writes those bindings as JSON, YAML or TOML files.
//
// Keys are written by name. When reading, integers are accepted as raw
// keycode or scancode values and kept bit-for-bit.
package binding

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Alia5/keytab/keycode"
)

var (
	// ErrUnknownKey is returned for key names or values outside the tables.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDuplicateKey is returned when a key would trigger two actions.
	ErrDuplicateKey = errors.New("key bound to more than one action")
	// ErrEmptyAction is returned by Bind for an empty action name.
	ErrEmptyAction = errors.New("empty action name")
	// ErrFormat is returned for unknown file formats and malformed documents.
	ErrFormat = errors.New("unsupported bindings format")
)

// Binding is the set of logical and physical keys that trigger one action.
type Binding struct {
	Action    string
	Keys      []keycode.Keycode
	Scancodes []keycode.Scancode
}

// Set maps actions to bindings. A key may trigger at most one action.
// A Set is not safe for concurrent modification.
type Set struct {
	bindings   map[string]*Binding
	byKey      map[keycode.Keycode]string
	byScancode map[keycode.Scancode]string
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		bindings:   map[string]*Binding{},
		byKey:      map[keycode.Keycode]string{},
		byScancode: map[keycode.Scancode]string{},
	}
}

// Bind adds keys and scancodes to action, creating it if needed.
// Keys listed twice are folded. Nothing is changed when an error is
// returned.
func (s *Set) Bind(action string, keys []keycode.Keycode, scancodes []keycode.Scancode) error {
	if action == "" {
		return ErrEmptyAction
	}
	for _, k := range keys {
		if k == keycode.KeycodeUnknown || !k.Valid() {
			return fmt.Errorf("%w: keycode %#x for %q", ErrUnknownKey, int32(k), action)
		}
		if other, ok := s.byKey[k]; ok && other != action {
			return fmt.Errorf("%w: %s is bound to %q and %q", ErrDuplicateKey, k, other, action)
		}
	}
	for _, sc := range scancodes {
		if sc == keycode.ScancodeUnknown || !sc.Valid() {
			return fmt.Errorf("%w: scancode %d for %q", ErrUnknownKey, int32(sc), action)
		}
		if other, ok := s.byScancode[sc]; ok && other != action {
			return fmt.Errorf("%w: scancode %s is bound to %q and %q", ErrDuplicateKey, sc, other, action)
		}
	}
	b, ok := s.bindings[action]
	if !ok {
		b = &Binding{Action: action}
		s.bindings[action] = b
	}
	for _, k := range keys {
		if _, seen := s.byKey[k]; !seen {
			b.Keys = append(b.Keys, k)
			s.byKey[k] = action
		}
	}
	for _, sc := range scancodes {
		if _, seen := s.byScancode[sc]; !seen {
			b.Scancodes = append(b.Scancodes, sc)
			s.byScancode[sc] = action
		}
	}
	return nil
}

// Unbind removes action and releases its keys.
func (s *Set) Unbind(action string) {
	b, ok := s.bindings[action]
	if !ok {
		return
	}
	for _, k := range b.Keys {
		delete(s.byKey, k)
	}
	for _, sc := range b.Scancodes {
		delete(s.byScancode, sc)
	}
	delete(s.bindings, action)
}

// Action returns the action triggered by the logical key k.
func (s *Set) Action(k keycode.Keycode) (string, bool) {
	a, ok := s.byKey[k]
	return a, ok
}

// ActionForScancode returns the action triggered by the physical key sc.
func (s *Set) ActionForScancode(sc keycode.Scancode) (string, bool) {
	a, ok := s.byScancode[sc]
	return a, ok
}

// Binding returns a copy of the binding for action.
func (s *Set) Binding(action string) (Binding, bool) {
	b, ok := s.bindings[action]
	if !ok {
		return Binding{}, false
	}
	return Binding{
		Action:    b.Action,
		Keys:      append([]keycode.Keycode(nil), b.Keys...),
		Scancodes: append([]keycode.Scancode(nil), b.Scancodes...),
	}, true
}

// Actions returns every bound action in lexical order.
func (s *Set) Actions() []string {
	out := make([]string, 0, len(s.bindings))
	for a := range s.bindings {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of actions.
func (s *Set) Len() int {
	return len(s.bindings)
}
