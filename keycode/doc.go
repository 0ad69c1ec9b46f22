// Package keycode is the shared vocabulary for keyboard input: scancodes
// name physical key positions and keycodes name what a key means.
//
// The names and values mirror SDL 2.0's SDL_Scancode and SDL_Keycode so
// that applications can pass them to and from SDL without conversion,
// while consumers of this package do not need SDL at all. Values are
// fixed forever and safe to persist.
//
// Altered from SDL_scancode.h and SDL_keycode.h, which carry this notice:
//
//	This software is provided 'as-is', without any express or implied
//	warranty.  In no event will the authors be held liable for any damages
//	arising from the use of this software.
//
//	Permission is granted to anyone to use this software for any purpose,
//	including commercial applications, and to alter it and redistribute it
//	freely, subject to the following restrictions:
//
//	1. The origin of this software must not be misrepresented; you must not
//	   claim that you wrote the original software. If you use this software
//	   in a product, an acknowledgment in the product documentation would be
//	   appreciated but is not required.
//	2. Altered source versions must be plainly marked as such, and must not be
//	   misrepresented as being the original software.
//	3. This notice may not be removed or altered from any source distribution.
package keycode
