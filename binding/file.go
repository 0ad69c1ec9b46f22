package binding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/Alia5/keytab/internal/configpaths"
	"github.com/Alia5/keytab/keycode"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Load reads a bindings file. The format follows the file extension.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := Decode(data, configpaths.FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Save writes s to path in the format matching its extension.
func (s *Set) Save(path string) error {
	data, err := s.Encode(configpaths.FormatForPath(path))
	if err != nil {
		return err
	}
	if err := configpaths.EnsureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Decode parses a bindings document:
//
//	bindings:
//	  jump:
//	    keys: [SPACE, w]
//	    scancodes: [KP_8]
func Decode(data []byte, format string) (*Set, error) {
	var doc map[string]any
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case "toml":
		tree, err := toml.LoadBytes(data)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		doc = tree.ToMap()
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	set := New()
	raw, ok := doc["bindings"]
	if !ok || raw == nil {
		return set, nil
	}
	entries, ok := asTable(raw)
	if !ok {
		return nil, fmt.Errorf("%w: bindings must be a table, got %T", ErrFormat, raw)
	}

	actions := make([]string, 0, len(entries))
	for a := range entries {
		actions = append(actions, a)
	}
	sort.Strings(actions)

	for _, action := range actions {
		entry, ok := asTable(entries[action])
		if !ok && entries[action] != nil {
			return nil, fmt.Errorf("%w: binding %q must be a table", ErrFormat, action)
		}
		var keys []keycode.Keycode
		for _, v := range asList(entry["keys"]) {
			k, err := decodeKeycode(v)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", action, err)
			}
			keys = append(keys, k)
		}
		var scancodes []keycode.Scancode
		for _, v := range asList(entry["scancodes"]) {
			sc, err := decodeScancode(v)
			if err != nil {
				return nil, fmt.Errorf("binding %q: %w", action, err)
			}
			scancodes = append(scancodes, sc)
		}
		if err := set.Bind(action, keys, scancodes); err != nil {
			return nil, err
		}
	}
	return set, nil
}

// Encode renders s as "json", "yaml" or "toml" with keys written by name.
func (s *Set) Encode(format string) ([]byte, error) {
	entries := make(map[string]any, len(s.bindings))
	for _, a := range s.Actions() {
		b := s.bindings[a]
		entry := map[string]any{}
		if len(b.Keys) > 0 {
			names := make([]string, len(b.Keys))
			for i, k := range b.Keys {
				names[i] = k.String()
			}
			entry["keys"] = names
		}
		if len(b.Scancodes) > 0 {
			names := make([]string, len(b.Scancodes))
			for i, sc := range b.Scancodes {
				names[i] = sc.String()
			}
			entry["scancodes"] = names
		}
		entries[a] = entry
	}
	doc := map[string]any{"bindings": entries}

	switch format {
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	case "yaml":
		return yaml.Marshal(doc)
	case "toml":
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
}

// asTable accepts the map types the decoders produce. yaml.v3 uses
// map[any]any when a key is not a string, such as an action named 1.
func asTable(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func asList(v any) []any {
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		return x
	default:
		return []any{x}
	}
}

func decodeKeycode(v any) (keycode.Keycode, error) {
	if name, ok := v.(string); ok {
		k, err := keycode.ParseKeycode(name)
		if err != nil {
			return keycode.KeycodeUnknown, fmt.Errorf("%w: %w", ErrUnknownKey, err)
		}
		return k, nil
	}
	n, ok := asInt(v)
	k := keycode.Keycode(n)
	if !ok || int64(k) != n || !k.Valid() {
		return keycode.KeycodeUnknown, fmt.Errorf("%w: keycode %v", ErrUnknownKey, v)
	}
	return k, nil
}

func decodeScancode(v any) (keycode.Scancode, error) {
	if name, ok := v.(string); ok {
		sc, err := keycode.ParseScancode(name)
		if err != nil {
			return keycode.ScancodeUnknown, fmt.Errorf("%w: %w", ErrUnknownKey, err)
		}
		return sc, nil
	}
	n, ok := asInt(v)
	sc := keycode.Scancode(n)
	if !ok || int64(sc) != n || !sc.Valid() {
		return keycode.ScancodeUnknown, fmt.Errorf("%w: scancode %v", ErrUnknownKey, v)
	}
	return sc, nil
}

// asInt accepts the integer representations produced by the three decoders.
func asInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case uint64:
		if x > math.MaxInt64 {
			return 0, false
		}
		return int64(x), true
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}
