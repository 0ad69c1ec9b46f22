package keycode

import "fmt"

// MarshalText implements encoding.TextMarshaler.
func (s Scancode) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: scancode %d", ErrOutOfRange, int32(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scancode) UnmarshalText(text []byte) error {
	v, err := ParseScancode(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Keycode) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: keycode %#x", ErrOutOfRange, int32(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Keycode) UnmarshalText(text []byte) error {
	v, err := ParseKeycode(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
