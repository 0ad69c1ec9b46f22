package typescript

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

	require.NoError(t, Generate(logger, dir, meta.Collect("0.0.1-dev")))

	raw, err := os.ReadFile(filepath.Join(dir, "src", "index.ts"))
	require.NoError(t, err)
	out := string(raw)

	assert.Contains(t, out, "export const NUM_SCANCODES = 512;")
	assert.Contains(t, out, "  Unknown = 0,\n")
	assert.Contains(t, out, "  Escape = 41,\n")
	assert.Contains(t, out, "  Escape = 27,\n")
	assert.Contains(t, out, "  AcBookmarks = Scancode.AcBookmarks | (1 << 30),\n")

	pkg, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(pkg), `"version": "0.0.1-dev"`)
}
