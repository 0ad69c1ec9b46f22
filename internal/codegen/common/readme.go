package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const readmeTemplate = `# keytab key tables (%s)

This is an automatically generated export of the [keytab](https://github.com/Alia5/keytab) scancode and keycode tables.

## Values

- Scancodes are USB HID keyboard page positions, plus a mapped group of consumer page keys.
- Printable keycodes are the character's code point.
- Every other keycode is its scancode with bit 30 set (` + "`scancode | 1 << 30`" + `).

The numbers are identical to SDL 2.0 ` + "`SDL_Scancode`" + ` and ` + "`SDL_Keycode`" + ` and never change between releases.

## License

zlib License - See LICENSE.txt for details.
`

func GenerateReadme(logger *slog.Logger, outputDir, lang string) error {
	readmePath := filepath.Join(outputDir, "README.md")

	if err := os.WriteFile(readmePath, []byte(fmt.Sprintf(readmeTemplate, lang)), 0644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}

	logger.Debug("Generated README.md", "path", readmePath)
	return nil
}
