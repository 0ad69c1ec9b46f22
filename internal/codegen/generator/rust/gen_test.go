package rust

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keytab/internal/codegen/meta"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	require.NoError(t, Generate(logger, dir, meta.Collect("2.0.0")))

	raw, err := os.ReadFile(filepath.Join(dir, "src", "lib.rs"))
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "pub const NUM_SCANCODES: usize = 512;")
	assert.Contains(t, out, "    pub const NUM_1: Scancode = 30;\n")
	assert.Contains(t, out, "    pub const NUM_1: Keycode = 49;\n")
	assert.Contains(t, out, "    pub const A: Keycode = 97;\n")
	assert.Contains(t, out, "    pub const CAPSLOCK: Keycode = scancode_to_keycode(scancode::CAPSLOCK);\n")

	cargo, err := os.ReadFile(filepath.Join(dir, "Cargo.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(cargo), `version = "2.0.0"`)
}
