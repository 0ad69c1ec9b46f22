package keycode_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keytab/keycode"
)

func TestDerivedKeycodes(t *testing.T) {
	pairs := []struct {
		k keycode.Keycode
		s keycode.Scancode
	}{
		{keycode.KeycodeCapsLock, keycode.ScancodeCapsLock},
		{keycode.KeycodeF1, keycode.ScancodeF1},
		{keycode.KeycodeF2, keycode.ScancodeF2},
		{keycode.KeycodeF3, keycode.ScancodeF3},
		{keycode.KeycodeF4, keycode.ScancodeF4},
		{keycode.KeycodeF5, keycode.ScancodeF5},
		{keycode.KeycodeF6, keycode.ScancodeF6},
		{keycode.KeycodeF7, keycode.ScancodeF7},
		{keycode.KeycodeF8, keycode.ScancodeF8},
		{keycode.KeycodeF9, keycode.ScancodeF9},
		{keycode.KeycodeF10, keycode.ScancodeF10},
		{keycode.KeycodeF11, keycode.ScancodeF11},
		{keycode.KeycodeF12, keycode.ScancodeF12},
		{keycode.KeycodePrintScreen, keycode.ScancodePrintScreen},
		{keycode.KeycodeScrollLock, keycode.ScancodeScrollLock},
		{keycode.KeycodePause, keycode.ScancodePause},
		{keycode.KeycodeInsert, keycode.ScancodeInsert},
		{keycode.KeycodeHome, keycode.ScancodeHome},
		{keycode.KeycodePageUp, keycode.ScancodePageUp},
		{keycode.KeycodeEnd, keycode.ScancodeEnd},
		{keycode.KeycodePageDown, keycode.ScancodePageDown},
		{keycode.KeycodeRight, keycode.ScancodeRight},
		{keycode.KeycodeLeft, keycode.ScancodeLeft},
		{keycode.KeycodeDown, keycode.ScancodeDown},
		{keycode.KeycodeUp, keycode.ScancodeUp},
		{keycode.KeycodeNumLockClear, keycode.ScancodeNumLockClear},
		{keycode.KeycodeKPDivide, keycode.ScancodeKPDivide},
		{keycode.KeycodeKPMultiply, keycode.ScancodeKPMultiply},
		{keycode.KeycodeKPMinus, keycode.ScancodeKPMinus},
		{keycode.KeycodeKPPlus, keycode.ScancodeKPPlus},
		{keycode.KeycodeKPEnter, keycode.ScancodeKPEnter},
		{keycode.KeycodeKP1, keycode.ScancodeKP1},
		{keycode.KeycodeKP2, keycode.ScancodeKP2},
		{keycode.KeycodeKP3, keycode.ScancodeKP3},
		{keycode.KeycodeKP4, keycode.ScancodeKP4},
		{keycode.KeycodeKP5, keycode.ScancodeKP5},
		{keycode.KeycodeKP6, keycode.ScancodeKP6},
		{keycode.KeycodeKP7, keycode.ScancodeKP7},
		{keycode.KeycodeKP8, keycode.ScancodeKP8},
		{keycode.KeycodeKP9, keycode.ScancodeKP9},
		{keycode.KeycodeKP0, keycode.ScancodeKP0},
		{keycode.KeycodeKPPeriod, keycode.ScancodeKPPeriod},
		{keycode.KeycodeApplication, keycode.ScancodeApplication},
		{keycode.KeycodePower, keycode.ScancodePower},
		{keycode.KeycodeKPEquals, keycode.ScancodeKPEquals},
		{keycode.KeycodeF13, keycode.ScancodeF13},
		{keycode.KeycodeF14, keycode.ScancodeF14},
		{keycode.KeycodeF15, keycode.ScancodeF15},
		{keycode.KeycodeF16, keycode.ScancodeF16},
		{keycode.KeycodeF17, keycode.ScancodeF17},
		{keycode.KeycodeF18, keycode.ScancodeF18},
		{keycode.KeycodeF19, keycode.ScancodeF19},
		{keycode.KeycodeF20, keycode.ScancodeF20},
		{keycode.KeycodeF21, keycode.ScancodeF21},
		{keycode.KeycodeF22, keycode.ScancodeF22},
		{keycode.KeycodeF23, keycode.ScancodeF23},
		{keycode.KeycodeF24, keycode.ScancodeF24},
		{keycode.KeycodeExecute, keycode.ScancodeExecute},
		{keycode.KeycodeHelp, keycode.ScancodeHelp},
		{keycode.KeycodeMenu, keycode.ScancodeMenu},
		{keycode.KeycodeSelect, keycode.ScancodeSelect},
		{keycode.KeycodeStop, keycode.ScancodeStop},
		{keycode.KeycodeAgain, keycode.ScancodeAgain},
		{keycode.KeycodeUndo, keycode.ScancodeUndo},
		{keycode.KeycodeCut, keycode.ScancodeCut},
		{keycode.KeycodeCopy, keycode.ScancodeCopy},
		{keycode.KeycodePaste, keycode.ScancodePaste},
		{keycode.KeycodeFind, keycode.ScancodeFind},
		{keycode.KeycodeMute, keycode.ScancodeMute},
		{keycode.KeycodeVolumeUp, keycode.ScancodeVolumeUp},
		{keycode.KeycodeVolumeDown, keycode.ScancodeVolumeDown},
		{keycode.KeycodeKPComma, keycode.ScancodeKPComma},
		{keycode.KeycodeKPEqualsAS400, keycode.ScancodeKPEqualsAS400},
		{keycode.KeycodeAltErase, keycode.ScancodeAltErase},
		{keycode.KeycodeSysReq, keycode.ScancodeSysReq},
		{keycode.KeycodeCancel, keycode.ScancodeCancel},
		{keycode.KeycodeClear, keycode.ScancodeClear},
		{keycode.KeycodePrior, keycode.ScancodePrior},
		{keycode.KeycodeReturn2, keycode.ScancodeReturn2},
		{keycode.KeycodeSeparator, keycode.ScancodeSeparator},
		{keycode.KeycodeOut, keycode.ScancodeOut},
		{keycode.KeycodeOper, keycode.ScancodeOper},
		{keycode.KeycodeClearAgain, keycode.ScancodeClearAgain},
		{keycode.KeycodeCrSel, keycode.ScancodeCrSel},
		{keycode.KeycodeExSel, keycode.ScancodeExSel},
		{keycode.KeycodeKP00, keycode.ScancodeKP00},
		{keycode.KeycodeKP000, keycode.ScancodeKP000},
		{keycode.KeycodeThousandsSeparator, keycode.ScancodeThousandsSeparator},
		{keycode.KeycodeDecimalSeparator, keycode.ScancodeDecimalSeparator},
		{keycode.KeycodeCurrencyUnit, keycode.ScancodeCurrencyUnit},
		{keycode.KeycodeCurrencySubunit, keycode.ScancodeCurrencySubunit},
		{keycode.KeycodeKPLeftParen, keycode.ScancodeKPLeftParen},
		{keycode.KeycodeKPRightParen, keycode.ScancodeKPRightParen},
		{keycode.KeycodeKPLeftBrace, keycode.ScancodeKPLeftBrace},
		{keycode.KeycodeKPRightBrace, keycode.ScancodeKPRightBrace},
		{keycode.KeycodeKPTab, keycode.ScancodeKPTab},
		{keycode.KeycodeKPBackspace, keycode.ScancodeKPBackspace},
		{keycode.KeycodeKPA, keycode.ScancodeKPA},
		{keycode.KeycodeKPB, keycode.ScancodeKPB},
		{keycode.KeycodeKPC, keycode.ScancodeKPC},
		{keycode.KeycodeKPD, keycode.ScancodeKPD},
		{keycode.KeycodeKPE, keycode.ScancodeKPE},
		{keycode.KeycodeKPF, keycode.ScancodeKPF},
		{keycode.KeycodeKPXOR, keycode.ScancodeKPXOR},
		{keycode.KeycodeKPPower, keycode.ScancodeKPPower},
		{keycode.KeycodeKPPercent, keycode.ScancodeKPPercent},
		{keycode.KeycodeKPLess, keycode.ScancodeKPLess},
		{keycode.KeycodeKPGreater, keycode.ScancodeKPGreater},
		{keycode.KeycodeKPAmpersand, keycode.ScancodeKPAmpersand},
		{keycode.KeycodeKPDblAmpersand, keycode.ScancodeKPDblAmpersand},
		{keycode.KeycodeKPVerticalBar, keycode.ScancodeKPVerticalBar},
		{keycode.KeycodeKPDblVerticalBar, keycode.ScancodeKPDblVerticalBar},
		{keycode.KeycodeKPColon, keycode.ScancodeKPColon},
		{keycode.KeycodeKPHash, keycode.ScancodeKPHash},
		{keycode.KeycodeKPSpace, keycode.ScancodeKPSpace},
		{keycode.KeycodeKPAt, keycode.ScancodeKPAt},
		{keycode.KeycodeKPExclam, keycode.ScancodeKPExclam},
		{keycode.KeycodeKPMemStore, keycode.ScancodeKPMemStore},
		{keycode.KeycodeKPMemRecall, keycode.ScancodeKPMemRecall},
		{keycode.KeycodeKPMemClear, keycode.ScancodeKPMemClear},
		{keycode.KeycodeKPMemAdd, keycode.ScancodeKPMemAdd},
		{keycode.KeycodeKPMemSubtract, keycode.ScancodeKPMemSubtract},
		{keycode.KeycodeKPMemMultiply, keycode.ScancodeKPMemMultiply},
		{keycode.KeycodeKPMemDivide, keycode.ScancodeKPMemDivide},
		{keycode.KeycodeKPPlusMinus, keycode.ScancodeKPPlusMinus},
		{keycode.KeycodeKPClear, keycode.ScancodeKPClear},
		{keycode.KeycodeKPClearEntry, keycode.ScancodeKPClearEntry},
		{keycode.KeycodeKPBinary, keycode.ScancodeKPBinary},
		{keycode.KeycodeKPOctal, keycode.ScancodeKPOctal},
		{keycode.KeycodeKPDecimal, keycode.ScancodeKPDecimal},
		{keycode.KeycodeKPHexadecimal, keycode.ScancodeKPHexadecimal},
		{keycode.KeycodeLCtrl, keycode.ScancodeLCtrl},
		{keycode.KeycodeLShift, keycode.ScancodeLShift},
		{keycode.KeycodeLAlt, keycode.ScancodeLAlt},
		{keycode.KeycodeLGUI, keycode.ScancodeLGUI},
		{keycode.KeycodeRCtrl, keycode.ScancodeRCtrl},
		{keycode.KeycodeRShift, keycode.ScancodeRShift},
		{keycode.KeycodeRAlt, keycode.ScancodeRAlt},
		{keycode.KeycodeRGUI, keycode.ScancodeRGUI},
		{keycode.KeycodeMode, keycode.ScancodeMode},
		{keycode.KeycodeAudioNext, keycode.ScancodeAudioNext},
		{keycode.KeycodeAudioPrev, keycode.ScancodeAudioPrev},
		{keycode.KeycodeAudioStop, keycode.ScancodeAudioStop},
		{keycode.KeycodeAudioPlay, keycode.ScancodeAudioPlay},
		{keycode.KeycodeAudioMute, keycode.ScancodeAudioMute},
		{keycode.KeycodeMediaSelect, keycode.ScancodeMediaSelect},
		{keycode.KeycodeWWW, keycode.ScancodeWWW},
		{keycode.KeycodeMail, keycode.ScancodeMail},
		{keycode.KeycodeCalculator, keycode.ScancodeCalculator},
		{keycode.KeycodeComputer, keycode.ScancodeComputer},
		{keycode.KeycodeACSearch, keycode.ScancodeACSearch},
		{keycode.KeycodeACHome, keycode.ScancodeACHome},
		{keycode.KeycodeACBack, keycode.ScancodeACBack},
		{keycode.KeycodeACForward, keycode.ScancodeACForward},
		{keycode.KeycodeACStop, keycode.ScancodeACStop},
		{keycode.KeycodeACRefresh, keycode.ScancodeACRefresh},
		{keycode.KeycodeACBookmarks, keycode.ScancodeACBookmarks},
		{keycode.KeycodeBrightnessDown, keycode.ScancodeBrightnessDown},
		{keycode.KeycodeBrightnessUp, keycode.ScancodeBrightnessUp},
		{keycode.KeycodeDisplaySwitch, keycode.ScancodeDisplaySwitch},
		{keycode.KeycodeKbdIllumToggle, keycode.ScancodeKbdIllumToggle},
		{keycode.KeycodeKbdIllumDown, keycode.ScancodeKbdIllumDown},
		{keycode.KeycodeKbdIllumUp, keycode.ScancodeKbdIllumUp},
		{keycode.KeycodeEject, keycode.ScancodeEject},
		{keycode.KeycodeSleep, keycode.ScancodeSleep},
	}

	for _, p := range pairs {
		assert.Equal(t, keycode.Keycode(p.s)|keycode.ScancodeMask, p.k, p.k.String())
		assert.Equal(t, keycode.ScancodeToKeycode(p.s), p.k)
		assert.True(t, p.k.IsScancode())

		s, ok := p.k.Scancode()
		assert.True(t, ok)
		assert.Equal(t, p.s, s)
		assert.Equal(t, p.s.String(), p.k.String())
	}
}

func TestPrintableKeycodes(t *testing.T) {
	for _, k := range keycode.Keycodes() {
		if k.IsScancode() {
			continue
		}
		r, ok := k.Rune()
		assert.True(t, ok, k.String())
		assert.Equal(t, keycode.Keycode(r), k)
		assert.Zero(t, int32(k)&keycode.ScancodeMask)
		_, ok = k.Scancode()
		assert.False(t, ok)
	}

	assert.Equal(t, keycode.Keycode(0x30), keycode.Keycode0)
	assert.Equal(t, keycode.Keycode(0x39), keycode.Keycode9)
	assert.Equal(t, keycode.Keycode(0x61), keycode.KeycodeA)
	assert.Equal(t, keycode.Keycode(0x7a), keycode.KeycodeZ)
	assert.Equal(t, keycode.Keycode('\r'), keycode.KeycodeReturn)
	assert.Equal(t, keycode.Keycode(0x1b), keycode.KeycodeEscape)
	assert.Equal(t, keycode.Keycode(0x7f), keycode.KeycodeDelete)
	for r := 'a'; r <= 'z'; r++ {
		assert.Equal(t, keycode.KeycodeA+keycode.Keycode(r-'a'), keycode.KeycodeFromRune(r))
	}
}

func TestEveryKeycodeIsPartitioned(t *testing.T) {
	for _, k := range keycode.Keycodes() {
		_, isRune := k.Rune()
		assert.NotEqual(t, isRune, k.IsScancode(), k.String())
	}
}

func TestMaskClearOfUnicode(t *testing.T) {
	assert.Equal(t, 1<<30, keycode.ScancodeMask)
	assert.Zero(t, 0x10FFFF&keycode.ScancodeMask)
}

func TestNumScancodesBoundsTable(t *testing.T) {
	all := keycode.Scancodes()
	require.NotEmpty(t, all)
	highest := all[len(all)-1]
	assert.Equal(t, keycode.ScancodeApp2, highest)
	assert.Less(t, int(highest), keycode.NumScancodes)

	var held [keycode.NumScancodes]bool
	for _, s := range all {
		assert.True(t, s.Valid())
		held[s] = true
	}
	assert.True(t, held[keycode.ScancodeApp2])
	assert.False(t, keycode.Scancode(keycode.NumScancodes).Valid())
	assert.False(t, keycode.Scancode(-1).Valid())
}

func TestScancodeRoundTrip(t *testing.T) {
	for s := keycode.ScancodeUnknown; s < keycode.NumScancodes; s++ {
		back, ok := keycode.ScancodeToKeycode(s).Scancode()
		require.True(t, ok)
		assert.Equal(t, s, back)
	}
}

func TestReservedScancodesAbsent(t *testing.T) {
	for _, v := range []int32{1, 2, 3, 130, 131, 132, 165, 175, 222, 223, 232, 256, 285, 511} {
		assert.False(t, keycode.Scancode(v).Known(), "%d", v)
		assert.True(t, keycode.Scancode(v).Valid(), "%d", v)
	}
	_, err := keycode.ParseScancode("LOCKINGCAPSLOCK")
	assert.ErrorIs(t, err, keycode.ErrUnknownName)
}

func TestParseScancode(t *testing.T) {
	tests := []struct {
		in   string
		want keycode.Scancode
		err  error
	}{
		{in: "A", want: keycode.ScancodeA},
		{in: "a", want: keycode.ScancodeA},
		{in: "1", want: keycode.Scancode1},
		{in: "KP_ENTER", want: keycode.ScancodeKPEnter},
		{in: "kp-enter", want: keycode.ScancodeKPEnter},
		{in: " Kp Enter ", want: keycode.ScancodeKPEnter},
		{in: "AC_BOOKMARKS", want: keycode.ScancodeACBookmarks},
		{in: "unknown", want: keycode.ScancodeUnknown},
		{in: "0x1", want: keycode.Scancode(1)},
		{in: "130", want: keycode.Scancode(130)},
		{in: "0x1ff", want: keycode.Scancode(511)},
		{in: "512", err: keycode.ErrOutOfRange},
		{in: "-4", err: keycode.ErrOutOfRange},
		{in: "NOPE", err: keycode.ErrUnknownName},
		{in: "", err: keycode.ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := keycode.ParseScancode(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeycode(t *testing.T) {
	tests := []struct {
		in   string
		want keycode.Keycode
		err  error
	}{
		{in: "a", want: keycode.KeycodeA},
		{in: "A", want: keycode.KeycodeA},
		{in: "0", want: keycode.Keycode0},
		{in: "_", want: keycode.KeycodeUnderscore},
		{in: "-", want: keycode.KeycodeMinus},
		{in: " ", want: keycode.KeycodeSpace},
		{in: "é", want: keycode.Keycode('é')},
		{in: "RETURN", want: keycode.KeycodeReturn},
		{in: "underscore", want: keycode.KeycodeUnderscore},
		{in: "F1", want: keycode.KeycodeF1},
		{in: "kp_dblverticalbar", want: keycode.KeycodeKPDblVerticalBar},
		{in: "0x4000003a", want: keycode.KeycodeF1},
		{in: "1073741882", want: keycode.KeycodeF1},
		{in: "0x40000200", err: keycode.ErrOutOfRange},
		{in: "0x80000000", err: keycode.ErrOutOfRange},
		{in: "0x110000", err: keycode.ErrOutOfRange},
		{in: "NOPE", err: keycode.ErrUnknownName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := keycode.ParseKeycode(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamesRoundTrip(t *testing.T) {
	for _, s := range keycode.Scancodes() {
		got, err := keycode.ParseScancode(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, k := range keycode.Keycodes() {
		got, err := keycode.ParseKeycode(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	for _, s := range []keycode.Scancode{1, 130, 300} {
		got, err := keycode.ParseScancode(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, k := range []keycode.Keycode{'é', 'A', keycode.ScancodeToKeycode(keycode.ScancodeA)} {
		got, err := keycode.ParseKeycode(k.String())
		require.NoError(t, err)
		if k == 'A' {
			assert.Equal(t, "0x41", k.String())
		}
		assert.Equal(t, k, got)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "KP_ENTER", keycode.ScancodeKPEnter.String())
	assert.Equal(t, "UNKNOWN", keycode.ScancodeUnknown.String())
	assert.Equal(t, "0x82", keycode.Scancode(130).String())
	assert.Equal(t, "a", keycode.KeycodeA.String())
	assert.Equal(t, "SPACE", keycode.KeycodeSpace.String())
	assert.Equal(t, "é", keycode.Keycode('é').String())
	assert.Equal(t, "0x40000004", keycode.ScancodeToKeycode(keycode.ScancodeA).String())
}

func TestTextMarshaling(t *testing.T) {
	type binding struct {
		Key  keycode.Keycode  `json:"key"`
		Scan keycode.Scancode `json:"scan"`
	}

	data, err := json.Marshal(binding{Key: keycode.KeycodeF5, Scan: keycode.ScancodeLShift})
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"F5","scan":"LSHIFT"}`, string(data))

	var b binding
	require.NoError(t, json.Unmarshal([]byte(`{"key":"q","scan":"0x1"}`), &b))
	assert.Equal(t, keycode.KeycodeQ, b.Key)
	assert.Equal(t, keycode.Scancode(1), b.Scan)

	assert.Error(t, json.Unmarshal([]byte(`{"key":"bogus"}`), &b))

	_, err = keycode.Scancode(keycode.NumScancodes).MarshalText()
	assert.ErrorIs(t, err, keycode.ErrOutOfRange)
	_, err = keycode.Keycode(-1).MarshalText()
	assert.ErrorIs(t, err, keycode.ErrOutOfRange)
}

func TestUsage(t *testing.T) {
	tests := []struct {
		s        keycode.Scancode
		page, id uint16
		ok       bool
	}{
		{keycode.ScancodeA, keycode.UsagePageKeyboard, 0x04, true},
		{keycode.ScancodeRGUI, keycode.UsagePageKeyboard, 0xE7, true},
		{keycode.ScancodeKPHexadecimal, keycode.UsagePageKeyboard, 0xDD, true},
		{keycode.ScancodeAudioPlay, keycode.UsagePageConsumer, 0xCD, true},
		{keycode.ScancodeACBookmarks, keycode.UsagePageConsumer, 0x22A, true},
		{keycode.ScancodeMode, 0, 0, false},
		{keycode.ScancodeEject, 0, 0, false},
		{keycode.Scancode(131), 0, 0, false},
		{keycode.ScancodeUnknown, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.s.String(), func(t *testing.T) {
			page, id, ok := tt.s.Usage()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.id, id)
			if ok {
				back, found := keycode.ScancodeFromUsage(page, id)
				assert.True(t, found)
				assert.Equal(t, tt.s, back)
			}
		})
	}

	_, found := keycode.ScancodeFromUsage(keycode.UsagePageKeyboard, 0x82)
	assert.False(t, found)
	_, found = keycode.ScancodeFromUsage(0x01, 0x04)
	assert.False(t, found)
}

func TestDefaultKeycode(t *testing.T) {
	tests := []struct {
		s    keycode.Scancode
		want keycode.Keycode
	}{
		{keycode.ScancodeA, keycode.KeycodeA},
		{keycode.ScancodeZ, keycode.KeycodeZ},
		{keycode.Scancode1, keycode.Keycode1},
		{keycode.Scancode0, keycode.Keycode0},
		{keycode.ScancodeApostrophe, keycode.KeycodeQuote},
		{keycode.ScancodeGrave, keycode.KeycodeBackquote},
		{keycode.ScancodeDelete, keycode.KeycodeDelete},
		{keycode.ScancodeF1, keycode.KeycodeF1},
		{keycode.ScancodeLCtrl, keycode.KeycodeLCtrl},
		{keycode.ScancodeNonUSHash, keycode.KeycodeUnknown},
		{keycode.ScancodeNonUSBackslash, keycode.KeycodeUnknown},
		{keycode.ScancodeInternational1, keycode.KeycodeUnknown},
		{keycode.ScancodeLang1, keycode.KeycodeUnknown},
		{keycode.ScancodeApp1, keycode.KeycodeUnknown},
		{keycode.ScancodeApp2, keycode.KeycodeUnknown},
		{keycode.Scancode(130), keycode.KeycodeUnknown},
		{keycode.ScancodeUnknown, keycode.KeycodeUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, keycode.DefaultKeycode(tt.s), tt.s.String())
	}

	s, ok := keycode.DefaultScancode('Q')
	assert.True(t, ok)
	assert.Equal(t, keycode.ScancodeQ, s)
	s, ok = keycode.DefaultScancode(keycode.KeycodeKPEnter)
	assert.True(t, ok)
	assert.Equal(t, keycode.ScancodeKPEnter, s)
	_, ok = keycode.DefaultScancode(keycode.KeycodeHash)
	assert.False(t, ok)
	_, ok = keycode.DefaultScancode(keycode.ScancodeToKeycode(keycode.ScancodeNonUSHash))
	assert.False(t, ok)
	_, ok = keycode.DefaultScancode(keycode.ScancodeToKeycode(keycode.ScancodeReturn))
	assert.False(t, ok)
}

func TestDefaultKeymapConsistent(t *testing.T) {
	for s := keycode.ScancodeUnknown; s < keycode.NumScancodes; s++ {
		k := keycode.DefaultKeycode(s)
		if k == keycode.KeycodeUnknown {
			continue
		}
		assert.True(t, k.Known(), "DefaultKeycode(%s) = %s is not a published keycode", s, k)

		back, ok := keycode.DefaultScancode(k)
		assert.True(t, ok, "DefaultScancode(%s)", k)
		assert.Equal(t, s, back, "DefaultScancode(DefaultKeycode(%s))", s)
	}

	for _, k := range keycode.Keycodes() {
		if s, ok := keycode.DefaultScancode(k); ok {
			assert.Equal(t, k, keycode.DefaultKeycode(s), "DefaultKeycode(DefaultScancode(%s))", k)
		}
	}
}
