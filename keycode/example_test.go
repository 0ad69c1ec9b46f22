package keycode_test

import (
	"fmt"

	"github.com/Alia5/keytab/keycode"
)

func ExampleScancodeToKeycode() {
	k := keycode.ScancodeToKeycode(keycode.ScancodeF1)
	s, _ := k.Scancode()
	fmt.Printf("%#x %v %s\n", int32(k), k.IsScancode(), s)
	// Output: 0x4000003a true F1
}

func ExampleParseKeycode() {
	for _, name := range []string{"a", "Q", "kp_enter", "0x4000003a"} {
		k, err := keycode.ParseKeycode(name)
		fmt.Println(k, err)
	}
	// Output:
	// a <nil>
	// q <nil>
	// KP_ENTER <nil>
	// F1 <nil>
}

func ExampleScancode_Usage() {
	page, id, ok := keycode.ScancodeAudioMute.Usage()
	fmt.Printf("%#x %#x %v\n", page, id, ok)
	// Output: 0xc 0xe2 true
}
