package common

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ZlibNotice is the notice of the SDL key tables whose values are mirrored.
// Generated sources carry it as a leading comment; LICENSE.txt holds it in full.
const ZlibNotice = `Simple DirectMedia Layer
Copyright (C) 1997-2024 Sam Lantinga <slouken@libsdl.org>

This software is provided 'as-is', without any express or implied
warranty.  In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
`

// CommentBlock prefixes every line of text, for embedding in a source file.
// Empty lines get the prefix without trailing spaces.
func CommentBlock(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if line == "" {
			lines[i] = strings.TrimRight(prefix, " ")
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func GenerateLicense(logger *slog.Logger, outputDir string) error {
	licensePath := filepath.Join(outputDir, "LICENSE.txt")

	if err := os.WriteFile(licensePath, []byte(ZlibNotice), 0644); err != nil {
		return fmt.Errorf("write LICENSE.txt: %w", err)
	}

	logger.Debug("Generated LICENSE.txt", "path", licensePath)
	return nil
}
