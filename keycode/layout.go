package keycode

// usCharacters lists the physical keys that produce a character on a US
// layout, other than letters and digits.
var usCharacters = map[Scancode]Keycode{
	ScancodeReturn:       KeycodeReturn,
	ScancodeEscape:       KeycodeEscape,
	ScancodeBackspace:    KeycodeBackspace,
	ScancodeTab:          KeycodeTab,
	ScancodeSpace:        KeycodeSpace,
	ScancodeMinus:        KeycodeMinus,
	ScancodeEquals:       KeycodeEquals,
	ScancodeLeftBracket:  KeycodeLeftBracket,
	ScancodeRightBracket: KeycodeRightBracket,
	ScancodeBackslash:    KeycodeBackslash,
	ScancodeSemicolon:    KeycodeSemicolon,
	ScancodeApostrophe:   KeycodeQuote,
	ScancodeGrave:        KeycodeBackquote,
	ScancodeComma:        KeycodeComma,
	ScancodePeriod:       KeycodePeriod,
	ScancodeSlash:        KeycodeSlash,
	ScancodeDelete:       KeycodeDelete,
}

var defaultScancodes = func() map[Keycode]Scancode {
	m := make(map[Keycode]Scancode)
	for s := ScancodeUnknown + 1; s < NumScancodes; s++ {
		if k := DefaultKeycode(s); k != KeycodeUnknown && !k.IsScancode() {
			m[k] = s
		}
	}
	return m
}()

// DefaultKeycode returns the keycode a physical key produces on a US
// layout. The ISO-only keys ScancodeNonUSHash and ScancodeNonUSBackslash
// depend on the layout and have no default.
func DefaultKeycode(s Scancode) Keycode {
	switch {
	case s >= ScancodeA && s <= ScancodeZ:
		return KeycodeA + Keycode(s-ScancodeA)
	case s >= Scancode1 && s <= Scancode9:
		return Keycode1 + Keycode(s-Scancode1)
	case s == Scancode0:
		return Keycode0
	case s == ScancodeNonUSHash, s == ScancodeNonUSBackslash:
		return KeycodeUnknown
	}
	if k, ok := usCharacters[s]; ok {
		return k
	}
	if s == ScancodeUnknown || !s.Known() {
		return KeycodeUnknown
	}
	// The international, language and app keys have no published keycode.
	if k := ScancodeToKeycode(s); k.Known() {
		return k
	}
	return KeycodeUnknown
}

// DefaultScancode returns the physical key that produces k on a US layout.
func DefaultScancode(k Keycode) (Scancode, bool) {
	if s, ok := k.Scancode(); ok {
		return s, DefaultKeycode(s) == k
	}
	s, ok := defaultScancodes[KeycodeFromRune(rune(k))]
	return s, ok
}
