package keycode

import "unicode/utf8"

// ScancodeMask is set on every keycode that is derived from a scancode.
// Bit 30 sits above the 21 bits needed for any Unicode code point.
const ScancodeMask = 1 << 30

// Keycode identifies the logical meaning of a key. Keys that produce a
// character use its code point; all other keys are a Scancode with
// ScancodeMask set. Uppercase letters are not keycodes.
type Keycode int32

const (
	KeycodeUnknown Keycode = 0

	// Printable and ASCII control keys use their own code point.
	KeycodeReturn       Keycode = '\r'
	KeycodeEscape       Keycode = '\x1b'
	KeycodeBackspace    Keycode = '\b'
	KeycodeTab          Keycode = '\t'
	KeycodeSpace        Keycode = ' '
	KeycodeExclaim      Keycode = '!'
	KeycodeQuoteDbl     Keycode = '"'
	KeycodeHash         Keycode = '#'
	KeycodePercent      Keycode = '%'
	KeycodeDollar       Keycode = '$'
	KeycodeAmpersand    Keycode = '&'
	KeycodeQuote        Keycode = '\''
	KeycodeLeftParen    Keycode = '('
	KeycodeRightParen   Keycode = ')'
	KeycodeAsterisk     Keycode = '*'
	KeycodePlus         Keycode = '+'
	KeycodeComma        Keycode = ','
	KeycodeMinus        Keycode = '-'
	KeycodePeriod       Keycode = '.'
	KeycodeSlash        Keycode = '/'
	Keycode0            Keycode = '0'
	Keycode1            Keycode = '1'
	Keycode2            Keycode = '2'
	Keycode3            Keycode = '3'
	Keycode4            Keycode = '4'
	Keycode5            Keycode = '5'
	Keycode6            Keycode = '6'
	Keycode7            Keycode = '7'
	Keycode8            Keycode = '8'
	Keycode9            Keycode = '9'
	KeycodeColon        Keycode = ':'
	KeycodeSemicolon    Keycode = ';'
	KeycodeLess         Keycode = '<'
	KeycodeEquals       Keycode = '='
	KeycodeGreater      Keycode = '>'
	KeycodeQuestion     Keycode = '?'
	KeycodeAt           Keycode = '@'
	KeycodeLeftBracket  Keycode = '['
	KeycodeBackslash    Keycode = '\\'
	KeycodeRightBracket Keycode = ']'
	KeycodeCaret        Keycode = '^'
	KeycodeUnderscore   Keycode = '_'
	KeycodeBackquote    Keycode = '`'
	KeycodeA            Keycode = 'a'
	KeycodeB            Keycode = 'b'
	KeycodeC            Keycode = 'c'
	KeycodeD            Keycode = 'd'
	KeycodeE            Keycode = 'e'
	KeycodeF            Keycode = 'f'
	KeycodeG            Keycode = 'g'
	KeycodeH            Keycode = 'h'
	KeycodeI            Keycode = 'i'
	KeycodeJ            Keycode = 'j'
	KeycodeK            Keycode = 'k'
	KeycodeL            Keycode = 'l'
	KeycodeM            Keycode = 'm'
	KeycodeN            Keycode = 'n'
	KeycodeO            Keycode = 'o'
	KeycodeP            Keycode = 'p'
	KeycodeQ            Keycode = 'q'
	KeycodeR            Keycode = 'r'
	KeycodeS            Keycode = 's'
	KeycodeT            Keycode = 't'
	KeycodeU            Keycode = 'u'
	KeycodeV            Keycode = 'v'
	KeycodeW            Keycode = 'w'
	KeycodeX            Keycode = 'x'
	KeycodeY            Keycode = 'y'
	KeycodeZ            Keycode = 'z'
	KeycodeDelete       Keycode = '\x7f'

	// Keys without a character are derived from their scancode.
	KeycodeCapsLock           = Keycode(ScancodeCapsLock) | ScancodeMask
	KeycodeF1                 = Keycode(ScancodeF1) | ScancodeMask
	KeycodeF2                 = Keycode(ScancodeF2) | ScancodeMask
	KeycodeF3                 = Keycode(ScancodeF3) | ScancodeMask
	KeycodeF4                 = Keycode(ScancodeF4) | ScancodeMask
	KeycodeF5                 = Keycode(ScancodeF5) | ScancodeMask
	KeycodeF6                 = Keycode(ScancodeF6) | ScancodeMask
	KeycodeF7                 = Keycode(ScancodeF7) | ScancodeMask
	KeycodeF8                 = Keycode(ScancodeF8) | ScancodeMask
	KeycodeF9                 = Keycode(ScancodeF9) | ScancodeMask
	KeycodeF10                = Keycode(ScancodeF10) | ScancodeMask
	KeycodeF11                = Keycode(ScancodeF11) | ScancodeMask
	KeycodeF12                = Keycode(ScancodeF12) | ScancodeMask
	KeycodePrintScreen        = Keycode(ScancodePrintScreen) | ScancodeMask
	KeycodeScrollLock         = Keycode(ScancodeScrollLock) | ScancodeMask
	KeycodePause              = Keycode(ScancodePause) | ScancodeMask
	KeycodeInsert             = Keycode(ScancodeInsert) | ScancodeMask
	KeycodeHome               = Keycode(ScancodeHome) | ScancodeMask
	KeycodePageUp             = Keycode(ScancodePageUp) | ScancodeMask
	KeycodeEnd                = Keycode(ScancodeEnd) | ScancodeMask
	KeycodePageDown           = Keycode(ScancodePageDown) | ScancodeMask
	KeycodeRight              = Keycode(ScancodeRight) | ScancodeMask
	KeycodeLeft               = Keycode(ScancodeLeft) | ScancodeMask
	KeycodeDown               = Keycode(ScancodeDown) | ScancodeMask
	KeycodeUp                 = Keycode(ScancodeUp) | ScancodeMask
	KeycodeNumLockClear       = Keycode(ScancodeNumLockClear) | ScancodeMask
	KeycodeKPDivide           = Keycode(ScancodeKPDivide) | ScancodeMask
	KeycodeKPMultiply         = Keycode(ScancodeKPMultiply) | ScancodeMask
	KeycodeKPMinus            = Keycode(ScancodeKPMinus) | ScancodeMask
	KeycodeKPPlus             = Keycode(ScancodeKPPlus) | ScancodeMask
	KeycodeKPEnter            = Keycode(ScancodeKPEnter) | ScancodeMask
	KeycodeKP1                = Keycode(ScancodeKP1) | ScancodeMask
	KeycodeKP2                = Keycode(ScancodeKP2) | ScancodeMask
	KeycodeKP3                = Keycode(ScancodeKP3) | ScancodeMask
	KeycodeKP4                = Keycode(ScancodeKP4) | ScancodeMask
	KeycodeKP5                = Keycode(ScancodeKP5) | ScancodeMask
	KeycodeKP6                = Keycode(ScancodeKP6) | ScancodeMask
	KeycodeKP7                = Keycode(ScancodeKP7) | ScancodeMask
	KeycodeKP8                = Keycode(ScancodeKP8) | ScancodeMask
	KeycodeKP9                = Keycode(ScancodeKP9) | ScancodeMask
	KeycodeKP0                = Keycode(ScancodeKP0) | ScancodeMask
	KeycodeKPPeriod           = Keycode(ScancodeKPPeriod) | ScancodeMask
	KeycodeApplication        = Keycode(ScancodeApplication) | ScancodeMask
	KeycodePower              = Keycode(ScancodePower) | ScancodeMask
	KeycodeKPEquals           = Keycode(ScancodeKPEquals) | ScancodeMask
	KeycodeF13                = Keycode(ScancodeF13) | ScancodeMask
	KeycodeF14                = Keycode(ScancodeF14) | ScancodeMask
	KeycodeF15                = Keycode(ScancodeF15) | ScancodeMask
	KeycodeF16                = Keycode(ScancodeF16) | ScancodeMask
	KeycodeF17                = Keycode(ScancodeF17) | ScancodeMask
	KeycodeF18                = Keycode(ScancodeF18) | ScancodeMask
	KeycodeF19                = Keycode(ScancodeF19) | ScancodeMask
	KeycodeF20                = Keycode(ScancodeF20) | ScancodeMask
	KeycodeF21                = Keycode(ScancodeF21) | ScancodeMask
	KeycodeF22                = Keycode(ScancodeF22) | ScancodeMask
	KeycodeF23                = Keycode(ScancodeF23) | ScancodeMask
	KeycodeF24                = Keycode(ScancodeF24) | ScancodeMask
	KeycodeExecute            = Keycode(ScancodeExecute) | ScancodeMask
	KeycodeHelp               = Keycode(ScancodeHelp) | ScancodeMask
	KeycodeMenu               = Keycode(ScancodeMenu) | ScancodeMask
	KeycodeSelect             = Keycode(ScancodeSelect) | ScancodeMask
	KeycodeStop               = Keycode(ScancodeStop) | ScancodeMask
	KeycodeAgain              = Keycode(ScancodeAgain) | ScancodeMask
	KeycodeUndo               = Keycode(ScancodeUndo) | ScancodeMask
	KeycodeCut                = Keycode(ScancodeCut) | ScancodeMask
	KeycodeCopy               = Keycode(ScancodeCopy) | ScancodeMask
	KeycodePaste              = Keycode(ScancodePaste) | ScancodeMask
	KeycodeFind               = Keycode(ScancodeFind) | ScancodeMask
	KeycodeMute               = Keycode(ScancodeMute) | ScancodeMask
	KeycodeVolumeUp           = Keycode(ScancodeVolumeUp) | ScancodeMask
	KeycodeVolumeDown         = Keycode(ScancodeVolumeDown) | ScancodeMask
	KeycodeKPComma            = Keycode(ScancodeKPComma) | ScancodeMask
	KeycodeKPEqualsAS400      = Keycode(ScancodeKPEqualsAS400) | ScancodeMask
	KeycodeAltErase           = Keycode(ScancodeAltErase) | ScancodeMask
	KeycodeSysReq             = Keycode(ScancodeSysReq) | ScancodeMask
	KeycodeCancel             = Keycode(ScancodeCancel) | ScancodeMask
	KeycodeClear              = Keycode(ScancodeClear) | ScancodeMask
	KeycodePrior              = Keycode(ScancodePrior) | ScancodeMask
	KeycodeReturn2            = Keycode(ScancodeReturn2) | ScancodeMask
	KeycodeSeparator          = Keycode(ScancodeSeparator) | ScancodeMask
	KeycodeOut                = Keycode(ScancodeOut) | ScancodeMask
	KeycodeOper               = Keycode(ScancodeOper) | ScancodeMask
	KeycodeClearAgain         = Keycode(ScancodeClearAgain) | ScancodeMask
	KeycodeCrSel              = Keycode(ScancodeCrSel) | ScancodeMask
	KeycodeExSel              = Keycode(ScancodeExSel) | ScancodeMask
	KeycodeKP00               = Keycode(ScancodeKP00) | ScancodeMask
	KeycodeKP000              = Keycode(ScancodeKP000) | ScancodeMask
	KeycodeThousandsSeparator = Keycode(ScancodeThousandsSeparator) | ScancodeMask
	KeycodeDecimalSeparator   = Keycode(ScancodeDecimalSeparator) | ScancodeMask
	KeycodeCurrencyUnit       = Keycode(ScancodeCurrencyUnit) | ScancodeMask
	KeycodeCurrencySubunit    = Keycode(ScancodeCurrencySubunit) | ScancodeMask
	KeycodeKPLeftParen        = Keycode(ScancodeKPLeftParen) | ScancodeMask
	KeycodeKPRightParen       = Keycode(ScancodeKPRightParen) | ScancodeMask
	KeycodeKPLeftBrace        = Keycode(ScancodeKPLeftBrace) | ScancodeMask
	KeycodeKPRightBrace       = Keycode(ScancodeKPRightBrace) | ScancodeMask
	KeycodeKPTab              = Keycode(ScancodeKPTab) | ScancodeMask
	KeycodeKPBackspace        = Keycode(ScancodeKPBackspace) | ScancodeMask
	KeycodeKPA                = Keycode(ScancodeKPA) | ScancodeMask
	KeycodeKPB                = Keycode(ScancodeKPB) | ScancodeMask
	KeycodeKPC                = Keycode(ScancodeKPC) | ScancodeMask
	KeycodeKPD                = Keycode(ScancodeKPD) | ScancodeMask
	KeycodeKPE                = Keycode(ScancodeKPE) | ScancodeMask
	KeycodeKPF                = Keycode(ScancodeKPF) | ScancodeMask
	KeycodeKPXOR              = Keycode(ScancodeKPXOR) | ScancodeMask
	KeycodeKPPower            = Keycode(ScancodeKPPower) | ScancodeMask
	KeycodeKPPercent          = Keycode(ScancodeKPPercent) | ScancodeMask
	KeycodeKPLess             = Keycode(ScancodeKPLess) | ScancodeMask
	KeycodeKPGreater          = Keycode(ScancodeKPGreater) | ScancodeMask
	KeycodeKPAmpersand        = Keycode(ScancodeKPAmpersand) | ScancodeMask
	KeycodeKPDblAmpersand     = Keycode(ScancodeKPDblAmpersand) | ScancodeMask
	KeycodeKPVerticalBar      = Keycode(ScancodeKPVerticalBar) | ScancodeMask
	KeycodeKPDblVerticalBar   = Keycode(ScancodeKPDblVerticalBar) | ScancodeMask
	KeycodeKPColon            = Keycode(ScancodeKPColon) | ScancodeMask
	KeycodeKPHash             = Keycode(ScancodeKPHash) | ScancodeMask
	KeycodeKPSpace            = Keycode(ScancodeKPSpace) | ScancodeMask
	KeycodeKPAt               = Keycode(ScancodeKPAt) | ScancodeMask
	KeycodeKPExclam           = Keycode(ScancodeKPExclam) | ScancodeMask
	KeycodeKPMemStore         = Keycode(ScancodeKPMemStore) | ScancodeMask
	KeycodeKPMemRecall        = Keycode(ScancodeKPMemRecall) | ScancodeMask
	KeycodeKPMemClear         = Keycode(ScancodeKPMemClear) | ScancodeMask
	KeycodeKPMemAdd           = Keycode(ScancodeKPMemAdd) | ScancodeMask
	KeycodeKPMemSubtract      = Keycode(ScancodeKPMemSubtract) | ScancodeMask
	KeycodeKPMemMultiply      = Keycode(ScancodeKPMemMultiply) | ScancodeMask
	KeycodeKPMemDivide        = Keycode(ScancodeKPMemDivide) | ScancodeMask
	KeycodeKPPlusMinus        = Keycode(ScancodeKPPlusMinus) | ScancodeMask
	KeycodeKPClear            = Keycode(ScancodeKPClear) | ScancodeMask
	KeycodeKPClearEntry       = Keycode(ScancodeKPClearEntry) | ScancodeMask
	KeycodeKPBinary           = Keycode(ScancodeKPBinary) | ScancodeMask
	KeycodeKPOctal            = Keycode(ScancodeKPOctal) | ScancodeMask
	KeycodeKPDecimal          = Keycode(ScancodeKPDecimal) | ScancodeMask
	KeycodeKPHexadecimal      = Keycode(ScancodeKPHexadecimal) | ScancodeMask
	KeycodeLCtrl              = Keycode(ScancodeLCtrl) | ScancodeMask
	KeycodeLShift             = Keycode(ScancodeLShift) | ScancodeMask
	KeycodeLAlt               = Keycode(ScancodeLAlt) | ScancodeMask
	KeycodeLGUI               = Keycode(ScancodeLGUI) | ScancodeMask
	KeycodeRCtrl              = Keycode(ScancodeRCtrl) | ScancodeMask
	KeycodeRShift             = Keycode(ScancodeRShift) | ScancodeMask
	KeycodeRAlt               = Keycode(ScancodeRAlt) | ScancodeMask
	KeycodeRGUI               = Keycode(ScancodeRGUI) | ScancodeMask
	KeycodeMode               = Keycode(ScancodeMode) | ScancodeMask
	KeycodeAudioNext          = Keycode(ScancodeAudioNext) | ScancodeMask
	KeycodeAudioPrev          = Keycode(ScancodeAudioPrev) | ScancodeMask
	KeycodeAudioStop          = Keycode(ScancodeAudioStop) | ScancodeMask
	KeycodeAudioPlay          = Keycode(ScancodeAudioPlay) | ScancodeMask
	KeycodeAudioMute          = Keycode(ScancodeAudioMute) | ScancodeMask
	KeycodeMediaSelect        = Keycode(ScancodeMediaSelect) | ScancodeMask
	KeycodeWWW                = Keycode(ScancodeWWW) | ScancodeMask
	KeycodeMail               = Keycode(ScancodeMail) | ScancodeMask
	KeycodeCalculator         = Keycode(ScancodeCalculator) | ScancodeMask
	KeycodeComputer           = Keycode(ScancodeComputer) | ScancodeMask
	KeycodeACSearch           = Keycode(ScancodeACSearch) | ScancodeMask
	KeycodeACHome             = Keycode(ScancodeACHome) | ScancodeMask
	KeycodeACBack             = Keycode(ScancodeACBack) | ScancodeMask
	KeycodeACForward          = Keycode(ScancodeACForward) | ScancodeMask
	KeycodeACStop             = Keycode(ScancodeACStop) | ScancodeMask
	KeycodeACRefresh          = Keycode(ScancodeACRefresh) | ScancodeMask
	KeycodeACBookmarks        = Keycode(ScancodeACBookmarks) | ScancodeMask
	KeycodeBrightnessDown     = Keycode(ScancodeBrightnessDown) | ScancodeMask
	KeycodeBrightnessUp       = Keycode(ScancodeBrightnessUp) | ScancodeMask
	KeycodeDisplaySwitch      = Keycode(ScancodeDisplaySwitch) | ScancodeMask
	KeycodeKbdIllumToggle     = Keycode(ScancodeKbdIllumToggle) | ScancodeMask
	KeycodeKbdIllumDown       = Keycode(ScancodeKbdIllumDown) | ScancodeMask
	KeycodeKbdIllumUp         = Keycode(ScancodeKbdIllumUp) | ScancodeMask
	KeycodeEject              = Keycode(ScancodeEject) | ScancodeMask
	KeycodeSleep              = Keycode(ScancodeSleep) | ScancodeMask
)

// ScancodeToKeycode returns the keycode of a key that produces no character.
func ScancodeToKeycode(s Scancode) Keycode {
	return Keycode(s) | ScancodeMask
}

// KeycodeFromRune returns the keycode for a character. ASCII uppercase
// letters fold to their lowercase keycode.
func KeycodeFromRune(r rune) Keycode {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 0 || r >= ScancodeMask {
		return KeycodeUnknown
	}
	return Keycode(r)
}

// IsScancode reports whether k carries ScancodeMask.
func (k Keycode) IsScancode() bool {
	return k&ScancodeMask != 0
}

// Scancode recovers the scancode a derived keycode was built from.
// ok is false for character keycodes.
func (k Keycode) Scancode() (s Scancode, ok bool) {
	if !k.IsScancode() {
		return ScancodeUnknown, false
	}
	return Scancode(k &^ ScancodeMask), true
}

// Rune returns the character of a printable keycode.
func (k Keycode) Rune() (rune, bool) {
	if k <= 0 || k.IsScancode() || !utf8.ValidRune(rune(k)) {
		return 0, false
	}
	return rune(k), true
}

// Valid reports whether k is either a Unicode code point or a derived
// keycode whose scancode is in range.
func (k Keycode) Valid() bool {
	if k < 0 {
		return false
	}
	if s, ok := k.Scancode(); ok {
		return s.Valid()
	}
	return k == KeycodeUnknown || utf8.ValidRune(rune(k))
}

// Known reports whether k has a published name.
func (k Keycode) Known() bool {
	_, ok := keycodeNames[k]
	return ok
}
