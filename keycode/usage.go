package keycode

// USB HID usage pages a scancode can originate from.
const (
	UsagePageKeyboard uint16 = 0x07
	UsagePageConsumer uint16 = 0x0C
)

// consumerUsages maps the consumer page group onto its HID usage IDs.
var consumerUsages = map[Scancode]uint16{
	ScancodeAudioNext:   0xB5, // Scan Next Track
	ScancodeAudioPrev:   0xB6, // Scan Previous Track
	ScancodeAudioStop:   0xB7,
	ScancodeAudioPlay:   0xCD, // Play/Pause
	ScancodeAudioMute:   0xE2,
	ScancodeMediaSelect: 0x183,
	ScancodeWWW:         0x196,
	ScancodeMail:        0x18A,
	ScancodeCalculator:  0x192,
	ScancodeComputer:    0x194,
	ScancodeACSearch:    0x221,
	ScancodeACHome:      0x223,
	ScancodeACBack:      0x224,
	ScancodeACForward:   0x225,
	ScancodeACStop:      0x226,
	ScancodeACRefresh:   0x227,
	ScancodeACBookmarks: 0x22A,
}

var consumerScancodes = func() map[uint16]Scancode {
	m := make(map[uint16]Scancode, len(consumerUsages))
	for s, id := range consumerUsages {
		m[id] = s
	}
	return m
}()

// Usage returns the USB HID usage page and ID that the key reports.
// Keys outside both pages, such as ScancodeMode and the Mac keys, have none.
func (s Scancode) Usage() (page, id uint16, ok bool) {
	if s >= ScancodeA && s <= ScancodeRGUI && s.Known() {
		return UsagePageKeyboard, uint16(s), true
	}
	if id, found := consumerUsages[s]; found {
		return UsagePageConsumer, id, true
	}
	return 0, 0, false
}

// ScancodeFromUsage is the inverse of Scancode.Usage.
func ScancodeFromUsage(page, id uint16) (Scancode, bool) {
	switch page {
	case UsagePageKeyboard:
		s := Scancode(id)
		if s >= ScancodeA && s <= ScancodeRGUI && s.Known() {
			return s, true
		}
	case UsagePageConsumer:
		if s, ok := consumerScancodes[id]; ok {
			return s, true
		}
	}
	return ScancodeUnknown, false
}
