// Package sdlkey converts between keycode values and the SDL3 bindings in
// github.com/Zyko0/go-sdl3/sdl.
//
// Scancodes below 257 and all character keycodes are numerically identical
// in both. SDL3 renumbered the consumer keys that follow ScancodeMode and
// dropped the launcher, brightness and keyboard illumination keys; those
// convert with ok == false.
package sdlkey

import (
	"github.com/Zyko0/go-sdl3/sdl"

	"github.com/Alia5/keytab/keycode"
)

// sdl3MuteScancode is SDL_SCANCODE_MUTE, which SDL3 reuses for AUDIOMUTE.
const sdl3MuteScancode = 127

var toSDL = map[keycode.Scancode]sdl.Scancode{
	keycode.ScancodeMode:        257,
	keycode.ScancodeSleep:       258,
	keycode.ScancodeAudioPlay:   262,
	keycode.ScancodeAudioNext:   267,
	keycode.ScancodeAudioPrev:   268,
	keycode.ScancodeAudioStop:   269,
	keycode.ScancodeEject:       270,
	keycode.ScancodeMediaSelect: 272,
	keycode.ScancodeACSearch:    280,
	keycode.ScancodeACHome:      281,
	keycode.ScancodeACBack:      282,
	keycode.ScancodeACForward:   283,
	keycode.ScancodeACStop:      284,
	keycode.ScancodeACRefresh:   285,
	keycode.ScancodeACBookmarks: 286,
	keycode.ScancodeAudioMute:   sdl3MuteScancode,
}

var fromSDL = func() map[sdl.Scancode]keycode.Scancode {
	m := make(map[sdl.Scancode]keycode.Scancode, len(toSDL))
	for k, v := range toSDL {
		if v == sdl3MuteScancode {
			continue
		}
		m[v] = k
	}
	return m
}()

// Scancode converts s to its SDL3 scancode.
func Scancode(s keycode.Scancode) (sdl.Scancode, bool) {
	if s >= 0 && s < keycode.ScancodeMode {
		return sdl.Scancode(s), true
	}
	v, ok := toSDL[s]
	return v, ok
}

// FromScancode converts an SDL3 scancode. Scancodes SDL3 added that have no
// counterpart here return ok == false.
func FromScancode(s sdl.Scancode) (keycode.Scancode, bool) {
	if s < sdl.Scancode(keycode.ScancodeMode) {
		return keycode.Scancode(s), true
	}
	v, ok := fromSDL[s]
	return v, ok
}

// Keycode converts k to its SDL3 keycode.
func Keycode(k keycode.Keycode) (sdl.Keycode, bool) {
	s, derived := k.Scancode()
	if !derived {
		return sdl.Keycode(k), k >= 0
	}
	v, ok := Scancode(s)
	if !ok {
		return 0, false
	}
	return sdl.Keycode(v) | keycode.ScancodeMask, true
}

// FromKeycode converts an SDL3 keycode.
func FromKeycode(k sdl.Keycode) (keycode.Keycode, bool) {
	if k&keycode.ScancodeMask == 0 {
		return keycode.Keycode(k), true
	}
	s, ok := FromScancode(sdl.Scancode(k &^ keycode.ScancodeMask))
	if !ok {
		return keycode.KeycodeUnknown, false
	}
	return keycode.ScancodeToKeycode(s), true
}
