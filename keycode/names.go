package keycode

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrUnknownName is returned when a name matches no scancode or keycode.
	ErrUnknownName = errors.New("unknown key name")
	// ErrOutOfRange is returned for numeric values outside the table.
	ErrOutOfRange = errors.New("key value out of range")
)

// scancodeNames holds the canonical text form of every published scancode.
var scancodeNames = map[Scancode]string{
	ScancodeUnknown:            "UNKNOWN",
	ScancodeA:                  "A",
	ScancodeB:                  "B",
	ScancodeC:                  "C",
	ScancodeD:                  "D",
	ScancodeE:                  "E",
	ScancodeF:                  "F",
	ScancodeG:                  "G",
	ScancodeH:                  "H",
	ScancodeI:                  "I",
	ScancodeJ:                  "J",
	ScancodeK:                  "K",
	ScancodeL:                  "L",
	ScancodeM:                  "M",
	ScancodeN:                  "N",
	ScancodeO:                  "O",
	ScancodeP:                  "P",
	ScancodeQ:                  "Q",
	ScancodeR:                  "R",
	ScancodeS:                  "S",
	ScancodeT:                  "T",
	ScancodeU:                  "U",
	ScancodeV:                  "V",
	ScancodeW:                  "W",
	ScancodeX:                  "X",
	ScancodeY:                  "Y",
	ScancodeZ:                  "Z",
	Scancode1:                  "1",
	Scancode2:                  "2",
	Scancode3:                  "3",
	Scancode4:                  "4",
	Scancode5:                  "5",
	Scancode6:                  "6",
	Scancode7:                  "7",
	Scancode8:                  "8",
	Scancode9:                  "9",
	Scancode0:                  "0",
	ScancodeReturn:             "RETURN",
	ScancodeEscape:             "ESCAPE",
	ScancodeBackspace:          "BACKSPACE",
	ScancodeTab:                "TAB",
	ScancodeSpace:              "SPACE",
	ScancodeMinus:              "MINUS",
	ScancodeEquals:             "EQUALS",
	ScancodeLeftBracket:        "LEFTBRACKET",
	ScancodeRightBracket:       "RIGHTBRACKET",
	ScancodeBackslash:          "BACKSLASH",
	ScancodeNonUSHash:          "NONUSHASH",
	ScancodeSemicolon:          "SEMICOLON",
	ScancodeApostrophe:         "APOSTROPHE",
	ScancodeGrave:              "GRAVE",
	ScancodeComma:              "COMMA",
	ScancodePeriod:             "PERIOD",
	ScancodeSlash:              "SLASH",
	ScancodeCapsLock:           "CAPSLOCK",
	ScancodeF1:                 "F1",
	ScancodeF2:                 "F2",
	ScancodeF3:                 "F3",
	ScancodeF4:                 "F4",
	ScancodeF5:                 "F5",
	ScancodeF6:                 "F6",
	ScancodeF7:                 "F7",
	ScancodeF8:                 "F8",
	ScancodeF9:                 "F9",
	ScancodeF10:                "F10",
	ScancodeF11:                "F11",
	ScancodeF12:                "F12",
	ScancodePrintScreen:        "PRINTSCREEN",
	ScancodeScrollLock:         "SCROLLLOCK",
	ScancodePause:              "PAUSE",
	ScancodeInsert:             "INSERT",
	ScancodeHome:               "HOME",
	ScancodePageUp:             "PAGEUP",
	ScancodeDelete:             "DELETE",
	ScancodeEnd:                "END",
	ScancodePageDown:           "PAGEDOWN",
	ScancodeRight:              "RIGHT",
	ScancodeLeft:               "LEFT",
	ScancodeDown:               "DOWN",
	ScancodeUp:                 "UP",
	ScancodeNumLockClear:       "NUMLOCKCLEAR",
	ScancodeKPDivide:           "KP_DIVIDE",
	ScancodeKPMultiply:         "KP_MULTIPLY",
	ScancodeKPMinus:            "KP_MINUS",
	ScancodeKPPlus:             "KP_PLUS",
	ScancodeKPEnter:            "KP_ENTER",
	ScancodeKP1:                "KP_1",
	ScancodeKP2:                "KP_2",
	ScancodeKP3:                "KP_3",
	ScancodeKP4:                "KP_4",
	ScancodeKP5:                "KP_5",
	ScancodeKP6:                "KP_6",
	ScancodeKP7:                "KP_7",
	ScancodeKP8:                "KP_8",
	ScancodeKP9:                "KP_9",
	ScancodeKP0:                "KP_0",
	ScancodeKPPeriod:           "KP_PERIOD",
	ScancodeNonUSBackslash:     "NONUSBACKSLASH",
	ScancodeApplication:        "APPLICATION",
	ScancodePower:              "POWER",
	ScancodeKPEquals:           "KP_EQUALS",
	ScancodeF13:                "F13",
	ScancodeF14:                "F14",
	ScancodeF15:                "F15",
	ScancodeF16:                "F16",
	ScancodeF17:                "F17",
	ScancodeF18:                "F18",
	ScancodeF19:                "F19",
	ScancodeF20:                "F20",
	ScancodeF21:                "F21",
	ScancodeF22:                "F22",
	ScancodeF23:                "F23",
	ScancodeF24:                "F24",
	ScancodeExecute:            "EXECUTE",
	ScancodeHelp:               "HELP",
	ScancodeMenu:               "MENU",
	ScancodeSelect:             "SELECT",
	ScancodeStop:               "STOP",
	ScancodeAgain:              "AGAIN",
	ScancodeUndo:               "UNDO",
	ScancodeCut:                "CUT",
	ScancodeCopy:               "COPY",
	ScancodePaste:              "PASTE",
	ScancodeFind:               "FIND",
	ScancodeMute:               "MUTE",
	ScancodeVolumeUp:           "VOLUMEUP",
	ScancodeVolumeDown:         "VOLUMEDOWN",
	ScancodeKPComma:            "KP_COMMA",
	ScancodeKPEqualsAS400:      "KP_EQUALSAS400",
	ScancodeInternational1:     "INTERNATIONAL1",
	ScancodeInternational2:     "INTERNATIONAL2",
	ScancodeInternational3:     "INTERNATIONAL3",
	ScancodeInternational4:     "INTERNATIONAL4",
	ScancodeInternational5:     "INTERNATIONAL5",
	ScancodeInternational6:     "INTERNATIONAL6",
	ScancodeInternational7:     "INTERNATIONAL7",
	ScancodeInternational8:     "INTERNATIONAL8",
	ScancodeInternational9:     "INTERNATIONAL9",
	ScancodeLang1:              "LANG1",
	ScancodeLang2:              "LANG2",
	ScancodeLang3:              "LANG3",
	ScancodeLang4:              "LANG4",
	ScancodeLang5:              "LANG5",
	ScancodeLang6:              "LANG6",
	ScancodeLang7:              "LANG7",
	ScancodeLang8:              "LANG8",
	ScancodeLang9:              "LANG9",
	ScancodeAltErase:           "ALTERASE",
	ScancodeSysReq:             "SYSREQ",
	ScancodeCancel:             "CANCEL",
	ScancodeClear:              "CLEAR",
	ScancodePrior:              "PRIOR",
	ScancodeReturn2:            "RETURN2",
	ScancodeSeparator:          "SEPARATOR",
	ScancodeOut:                "OUT",
	ScancodeOper:               "OPER",
	ScancodeClearAgain:         "CLEARAGAIN",
	ScancodeCrSel:              "CRSEL",
	ScancodeExSel:              "EXSEL",
	ScancodeKP00:               "KP_00",
	ScancodeKP000:              "KP_000",
	ScancodeThousandsSeparator: "THOUSANDSSEPARATOR",
	ScancodeDecimalSeparator:   "DECIMALSEPARATOR",
	ScancodeCurrencyUnit:       "CURRENCYUNIT",
	ScancodeCurrencySubunit:    "CURRENCYSUBUNIT",
	ScancodeKPLeftParen:        "KP_LEFTPAREN",
	ScancodeKPRightParen:       "KP_RIGHTPAREN",
	ScancodeKPLeftBrace:        "KP_LEFTBRACE",
	ScancodeKPRightBrace:       "KP_RIGHTBRACE",
	ScancodeKPTab:              "KP_TAB",
	ScancodeKPBackspace:        "KP_BACKSPACE",
	ScancodeKPA:                "KP_A",
	ScancodeKPB:                "KP_B",
	ScancodeKPC:                "KP_C",
	ScancodeKPD:                "KP_D",
	ScancodeKPE:                "KP_E",
	ScancodeKPF:                "KP_F",
	ScancodeKPXOR:              "KP_XOR",
	ScancodeKPPower:            "KP_POWER",
	ScancodeKPPercent:          "KP_PERCENT",
	ScancodeKPLess:             "KP_LESS",
	ScancodeKPGreater:          "KP_GREATER",
	ScancodeKPAmpersand:        "KP_AMPERSAND",
	ScancodeKPDblAmpersand:     "KP_DBLAMPERSAND",
	ScancodeKPVerticalBar:      "KP_VERTICALBAR",
	ScancodeKPDblVerticalBar:   "KP_DBLVERTICALBAR",
	ScancodeKPColon:            "KP_COLON",
	ScancodeKPHash:             "KP_HASH",
	ScancodeKPSpace:            "KP_SPACE",
	ScancodeKPAt:               "KP_AT",
	ScancodeKPExclam:           "KP_EXCLAM",
	ScancodeKPMemStore:         "KP_MEMSTORE",
	ScancodeKPMemRecall:        "KP_MEMRECALL",
	ScancodeKPMemClear:         "KP_MEMCLEAR",
	ScancodeKPMemAdd:           "KP_MEMADD",
	ScancodeKPMemSubtract:      "KP_MEMSUBTRACT",
	ScancodeKPMemMultiply:      "KP_MEMMULTIPLY",
	ScancodeKPMemDivide:        "KP_MEMDIVIDE",
	ScancodeKPPlusMinus:        "KP_PLUSMINUS",
	ScancodeKPClear:            "KP_CLEAR",
	ScancodeKPClearEntry:       "KP_CLEARENTRY",
	ScancodeKPBinary:           "KP_BINARY",
	ScancodeKPOctal:            "KP_OCTAL",
	ScancodeKPDecimal:          "KP_DECIMAL",
	ScancodeKPHexadecimal:      "KP_HEXADECIMAL",
	ScancodeLCtrl:              "LCTRL",
	ScancodeLShift:             "LSHIFT",
	ScancodeLAlt:               "LALT",
	ScancodeLGUI:               "LGUI",
	ScancodeRCtrl:              "RCTRL",
	ScancodeRShift:             "RSHIFT",
	ScancodeRAlt:               "RALT",
	ScancodeRGUI:               "RGUI",
	ScancodeMode:               "MODE",
	ScancodeAudioNext:          "AUDIONEXT",
	ScancodeAudioPrev:          "AUDIOPREV",
	ScancodeAudioStop:          "AUDIOSTOP",
	ScancodeAudioPlay:          "AUDIOPLAY",
	ScancodeAudioMute:          "AUDIOMUTE",
	ScancodeMediaSelect:        "MEDIASELECT",
	ScancodeWWW:                "WWW",
	ScancodeMail:               "MAIL",
	ScancodeCalculator:         "CALCULATOR",
	ScancodeComputer:           "COMPUTER",
	ScancodeACSearch:           "AC_SEARCH",
	ScancodeACHome:             "AC_HOME",
	ScancodeACBack:             "AC_BACK",
	ScancodeACForward:          "AC_FORWARD",
	ScancodeACStop:             "AC_STOP",
	ScancodeACRefresh:          "AC_REFRESH",
	ScancodeACBookmarks:        "AC_BOOKMARKS",
	ScancodeBrightnessDown:     "BRIGHTNESSDOWN",
	ScancodeBrightnessUp:       "BRIGHTNESSUP",
	ScancodeDisplaySwitch:      "DISPLAYSWITCH",
	ScancodeKbdIllumToggle:     "KBDILLUMTOGGLE",
	ScancodeKbdIllumDown:       "KBDILLUMDOWN",
	ScancodeKbdIllumUp:         "KBDILLUMUP",
	ScancodeEject:              "EJECT",
	ScancodeSleep:              "SLEEP",
	ScancodeApp1:               "APP1",
	ScancodeApp2:               "APP2",
}

// keycodeNames holds the canonical text form of every published keycode.
// Letters use the lowercase character they produce.
var keycodeNames = map[Keycode]string{
	KeycodeUnknown:            "UNKNOWN",
	KeycodeReturn:             "RETURN",
	KeycodeEscape:             "ESCAPE",
	KeycodeBackspace:          "BACKSPACE",
	KeycodeTab:                "TAB",
	KeycodeSpace:              "SPACE",
	KeycodeExclaim:            "EXCLAIM",
	KeycodeQuoteDbl:           "QUOTEDBL",
	KeycodeHash:               "HASH",
	KeycodePercent:            "PERCENT",
	KeycodeDollar:             "DOLLAR",
	KeycodeAmpersand:          "AMPERSAND",
	KeycodeQuote:              "QUOTE",
	KeycodeLeftParen:          "LEFTPAREN",
	KeycodeRightParen:         "RIGHTPAREN",
	KeycodeAsterisk:           "ASTERISK",
	KeycodePlus:               "PLUS",
	KeycodeComma:              "COMMA",
	KeycodeMinus:              "MINUS",
	KeycodePeriod:             "PERIOD",
	KeycodeSlash:              "SLASH",
	Keycode0:                  "0",
	Keycode1:                  "1",
	Keycode2:                  "2",
	Keycode3:                  "3",
	Keycode4:                  "4",
	Keycode5:                  "5",
	Keycode6:                  "6",
	Keycode7:                  "7",
	Keycode8:                  "8",
	Keycode9:                  "9",
	KeycodeColon:              "COLON",
	KeycodeSemicolon:          "SEMICOLON",
	KeycodeLess:               "LESS",
	KeycodeEquals:             "EQUALS",
	KeycodeGreater:            "GREATER",
	KeycodeQuestion:           "QUESTION",
	KeycodeAt:                 "AT",
	KeycodeLeftBracket:        "LEFTBRACKET",
	KeycodeBackslash:          "BACKSLASH",
	KeycodeRightBracket:       "RIGHTBRACKET",
	KeycodeCaret:              "CARET",
	KeycodeUnderscore:         "UNDERSCORE",
	KeycodeBackquote:          "BACKQUOTE",
	KeycodeA:                  "a",
	KeycodeB:                  "b",
	KeycodeC:                  "c",
	KeycodeD:                  "d",
	KeycodeE:                  "e",
	KeycodeF:                  "f",
	KeycodeG:                  "g",
	KeycodeH:                  "h",
	KeycodeI:                  "i",
	KeycodeJ:                  "j",
	KeycodeK:                  "k",
	KeycodeL:                  "l",
	KeycodeM:                  "m",
	KeycodeN:                  "n",
	KeycodeO:                  "o",
	KeycodeP:                  "p",
	KeycodeQ:                  "q",
	KeycodeR:                  "r",
	KeycodeS:                  "s",
	KeycodeT:                  "t",
	KeycodeU:                  "u",
	KeycodeV:                  "v",
	KeycodeW:                  "w",
	KeycodeX:                  "x",
	KeycodeY:                  "y",
	KeycodeZ:                  "z",
	KeycodeCapsLock:           "CAPSLOCK",
	KeycodeF1:                 "F1",
	KeycodeF2:                 "F2",
	KeycodeF3:                 "F3",
	KeycodeF4:                 "F4",
	KeycodeF5:                 "F5",
	KeycodeF6:                 "F6",
	KeycodeF7:                 "F7",
	KeycodeF8:                 "F8",
	KeycodeF9:                 "F9",
	KeycodeF10:                "F10",
	KeycodeF11:                "F11",
	KeycodeF12:                "F12",
	KeycodePrintScreen:        "PRINTSCREEN",
	KeycodeScrollLock:         "SCROLLLOCK",
	KeycodePause:              "PAUSE",
	KeycodeInsert:             "INSERT",
	KeycodeHome:               "HOME",
	KeycodePageUp:             "PAGEUP",
	KeycodeDelete:             "DELETE",
	KeycodeEnd:                "END",
	KeycodePageDown:           "PAGEDOWN",
	KeycodeRight:              "RIGHT",
	KeycodeLeft:               "LEFT",
	KeycodeDown:               "DOWN",
	KeycodeUp:                 "UP",
	KeycodeNumLockClear:       "NUMLOCKCLEAR",
	KeycodeKPDivide:           "KP_DIVIDE",
	KeycodeKPMultiply:         "KP_MULTIPLY",
	KeycodeKPMinus:            "KP_MINUS",
	KeycodeKPPlus:             "KP_PLUS",
	KeycodeKPEnter:            "KP_ENTER",
	KeycodeKP1:                "KP_1",
	KeycodeKP2:                "KP_2",
	KeycodeKP3:                "KP_3",
	KeycodeKP4:                "KP_4",
	KeycodeKP5:                "KP_5",
	KeycodeKP6:                "KP_6",
	KeycodeKP7:                "KP_7",
	KeycodeKP8:                "KP_8",
	KeycodeKP9:                "KP_9",
	KeycodeKP0:                "KP_0",
	KeycodeKPPeriod:           "KP_PERIOD",
	KeycodeApplication:        "APPLICATION",
	KeycodePower:              "POWER",
	KeycodeKPEquals:           "KP_EQUALS",
	KeycodeF13:                "F13",
	KeycodeF14:                "F14",
	KeycodeF15:                "F15",
	KeycodeF16:                "F16",
	KeycodeF17:                "F17",
	KeycodeF18:                "F18",
	KeycodeF19:                "F19",
	KeycodeF20:                "F20",
	KeycodeF21:                "F21",
	KeycodeF22:                "F22",
	KeycodeF23:                "F23",
	KeycodeF24:                "F24",
	KeycodeExecute:            "EXECUTE",
	KeycodeHelp:               "HELP",
	KeycodeMenu:               "MENU",
	KeycodeSelect:             "SELECT",
	KeycodeStop:               "STOP",
	KeycodeAgain:              "AGAIN",
	KeycodeUndo:               "UNDO",
	KeycodeCut:                "CUT",
	KeycodeCopy:               "COPY",
	KeycodePaste:              "PASTE",
	KeycodeFind:               "FIND",
	KeycodeMute:               "MUTE",
	KeycodeVolumeUp:           "VOLUMEUP",
	KeycodeVolumeDown:         "VOLUMEDOWN",
	KeycodeKPComma:            "KP_COMMA",
	KeycodeKPEqualsAS400:      "KP_EQUALSAS400",
	KeycodeAltErase:           "ALTERASE",
	KeycodeSysReq:             "SYSREQ",
	KeycodeCancel:             "CANCEL",
	KeycodeClear:              "CLEAR",
	KeycodePrior:              "PRIOR",
	KeycodeReturn2:            "RETURN2",
	KeycodeSeparator:          "SEPARATOR",
	KeycodeOut:                "OUT",
	KeycodeOper:               "OPER",
	KeycodeClearAgain:         "CLEARAGAIN",
	KeycodeCrSel:              "CRSEL",
	KeycodeExSel:              "EXSEL",
	KeycodeKP00:               "KP_00",
	KeycodeKP000:              "KP_000",
	KeycodeThousandsSeparator: "THOUSANDSSEPARATOR",
	KeycodeDecimalSeparator:   "DECIMALSEPARATOR",
	KeycodeCurrencyUnit:       "CURRENCYUNIT",
	KeycodeCurrencySubunit:    "CURRENCYSUBUNIT",
	KeycodeKPLeftParen:        "KP_LEFTPAREN",
	KeycodeKPRightParen:       "KP_RIGHTPAREN",
	KeycodeKPLeftBrace:        "KP_LEFTBRACE",
	KeycodeKPRightBrace:       "KP_RIGHTBRACE",
	KeycodeKPTab:              "KP_TAB",
	KeycodeKPBackspace:        "KP_BACKSPACE",
	KeycodeKPA:                "KP_A",
	KeycodeKPB:                "KP_B",
	KeycodeKPC:                "KP_C",
	KeycodeKPD:                "KP_D",
	KeycodeKPE:                "KP_E",
	KeycodeKPF:                "KP_F",
	KeycodeKPXOR:              "KP_XOR",
	KeycodeKPPower:            "KP_POWER",
	KeycodeKPPercent:          "KP_PERCENT",
	KeycodeKPLess:             "KP_LESS",
	KeycodeKPGreater:          "KP_GREATER",
	KeycodeKPAmpersand:        "KP_AMPERSAND",
	KeycodeKPDblAmpersand:     "KP_DBLAMPERSAND",
	KeycodeKPVerticalBar:      "KP_VERTICALBAR",
	KeycodeKPDblVerticalBar:   "KP_DBLVERTICALBAR",
	KeycodeKPColon:            "KP_COLON",
	KeycodeKPHash:             "KP_HASH",
	KeycodeKPSpace:            "KP_SPACE",
	KeycodeKPAt:               "KP_AT",
	KeycodeKPExclam:           "KP_EXCLAM",
	KeycodeKPMemStore:         "KP_MEMSTORE",
	KeycodeKPMemRecall:        "KP_MEMRECALL",
	KeycodeKPMemClear:         "KP_MEMCLEAR",
	KeycodeKPMemAdd:           "KP_MEMADD",
	KeycodeKPMemSubtract:      "KP_MEMSUBTRACT",
	KeycodeKPMemMultiply:      "KP_MEMMULTIPLY",
	KeycodeKPMemDivide:        "KP_MEMDIVIDE",
	KeycodeKPPlusMinus:        "KP_PLUSMINUS",
	KeycodeKPClear:            "KP_CLEAR",
	KeycodeKPClearEntry:       "KP_CLEARENTRY",
	KeycodeKPBinary:           "KP_BINARY",
	KeycodeKPOctal:            "KP_OCTAL",
	KeycodeKPDecimal:          "KP_DECIMAL",
	KeycodeKPHexadecimal:      "KP_HEXADECIMAL",
	KeycodeLCtrl:              "LCTRL",
	KeycodeLShift:             "LSHIFT",
	KeycodeLAlt:               "LALT",
	KeycodeLGUI:               "LGUI",
	KeycodeRCtrl:              "RCTRL",
	KeycodeRShift:             "RSHIFT",
	KeycodeRAlt:               "RALT",
	KeycodeRGUI:               "RGUI",
	KeycodeMode:               "MODE",
	KeycodeAudioNext:          "AUDIONEXT",
	KeycodeAudioPrev:          "AUDIOPREV",
	KeycodeAudioStop:          "AUDIOSTOP",
	KeycodeAudioPlay:          "AUDIOPLAY",
	KeycodeAudioMute:          "AUDIOMUTE",
	KeycodeMediaSelect:        "MEDIASELECT",
	KeycodeWWW:                "WWW",
	KeycodeMail:               "MAIL",
	KeycodeCalculator:         "CALCULATOR",
	KeycodeComputer:           "COMPUTER",
	KeycodeACSearch:           "AC_SEARCH",
	KeycodeACHome:             "AC_HOME",
	KeycodeACBack:             "AC_BACK",
	KeycodeACForward:          "AC_FORWARD",
	KeycodeACStop:             "AC_STOP",
	KeycodeACRefresh:          "AC_REFRESH",
	KeycodeACBookmarks:        "AC_BOOKMARKS",
	KeycodeBrightnessDown:     "BRIGHTNESSDOWN",
	KeycodeBrightnessUp:       "BRIGHTNESSUP",
	KeycodeDisplaySwitch:      "DISPLAYSWITCH",
	KeycodeKbdIllumToggle:     "KBDILLUMTOGGLE",
	KeycodeKbdIllumDown:       "KBDILLUMDOWN",
	KeycodeKbdIllumUp:         "KBDILLUMUP",
	KeycodeEject:              "EJECT",
	KeycodeSleep:              "SLEEP",
}

var (
	scancodesByName = map[string]Scancode{}
	keycodesByName  = map[string]Keycode{}
	scancodeList    []Scancode
	keycodeList     []Keycode
)

func init() {
	for s, name := range scancodeNames {
		scancodesByName[normalizeName(name)] = s
		if s != ScancodeUnknown {
			scancodeList = append(scancodeList, s)
		}
	}
	for k, name := range keycodeNames {
		keycodesByName[normalizeName(name)] = k
		if k != KeycodeUnknown {
			keycodeList = append(keycodeList, k)
		}
	}
	sort.Slice(scancodeList, func(i, j int) bool { return scancodeList[i] < scancodeList[j] })
	sort.Slice(keycodeList, func(i, j int) bool { return keycodeList[i] < keycodeList[j] })
}

// normalizeName folds case and drops separators so "kp-enter", "KP_ENTER"
// and "Kp Enter" resolve to the same key.
func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return unicode.ToUpper(r)
	}, strings.TrimSpace(name))
}

// Scancodes returns every published scancode in ascending order, without
// ScancodeUnknown.
func Scancodes() []Scancode {
	out := make([]Scancode, len(scancodeList))
	copy(out, scancodeList)
	return out
}

// Keycodes returns every published keycode in ascending order, without
// KeycodeUnknown.
func Keycodes() []Keycode {
	out := make([]Keycode, len(keycodeList))
	copy(out, keycodeList)
	return out
}

// String returns the canonical name, or a hex literal for unnamed values.
func (s Scancode) String() string {
	if name, ok := scancodeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("%#x", int32(s))
}

// String returns the canonical name. Unnamed printable keycodes render as
// the character itself and everything else as a hex literal.
func (k Keycode) String() string {
	if name, ok := keycodeNames[k]; ok {
		return name
	}
	if r, ok := k.Rune(); ok && unicode.IsPrint(r) && KeycodeFromRune(r) == k {
		return string(r)
	}
	return fmt.Sprintf("%#x", int32(k))
}

// ParseScancode resolves a scancode name (case and separator insensitive)
// or a number. Digits name the number-row keys, so "1" is Scancode1; use a
// hex literal such as "0x1" for raw values.
func ParseScancode(name string) (Scancode, error) {
	if s, ok := scancodesByName[normalizeName(name)]; ok {
		return s, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(name), 0, 32)
	if err != nil {
		return ScancodeUnknown, fmt.Errorf("%w: scancode %q", ErrUnknownName, name)
	}
	s := Scancode(n)
	if !s.Valid() {
		return ScancodeUnknown, fmt.Errorf("%w: scancode %d", ErrOutOfRange, n)
	}
	return s, nil
}

// ParseKeycode resolves a single character, a keycode name or a number.
func ParseKeycode(name string) (Keycode, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r != utf8.RuneError {
			return KeycodeFromRune(r), nil
		}
	}
	if k, ok := keycodesByName[normalizeName(name)]; ok {
		return k, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(name), 0, 64)
	if err != nil {
		return KeycodeUnknown, fmt.Errorf("%w: keycode %q", ErrUnknownName, name)
	}
	k := Keycode(n)
	if int64(k) != n || !k.Valid() {
		return KeycodeUnknown, fmt.Errorf("%w: keycode %#x", ErrOutOfRange, n)
	}
	return k, nil
}
