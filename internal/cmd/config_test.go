package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestBuildMapFromStruct(t *testing.T) {
	assert.Equal(t, map[string]any{"format": "text"}, buildMapFromStruct(reflect.TypeOf(List{})))
	assert.Equal(t, map[string]any{"output": "./generated", "lang": "all"}, buildMapFromStruct(reflect.TypeOf(Codegen{})))
	assert.Empty(t, buildMapFromStruct(reflect.TypeOf(Lookup{})))
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "keytab.yaml")
	require.NoError(t, (&ConfigInit{Command: "log", Format: "yaml", Output: yamlPath}).Run(discardLogger()))
	raw, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var doc map[string]map[string]string
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	assert.Equal(t, "info", doc["log"]["level"])

	err = (&ConfigInit{Command: "log", Format: "yaml", Output: yamlPath}).Run(discardLogger())
	assert.ErrorContains(t, err, "--force")
	assert.NoError(t, (&ConfigInit{Command: "codegen", Format: "yaml", Output: yamlPath, Force: true}).Run(discardLogger()))

	tomlPath := filepath.Join(dir, "nested", "keytab.toml")
	require.NoError(t, (&ConfigInit{Command: "codegen", Format: "toml", Output: tomlPath}).Run(discardLogger()))
	tree, err := toml.LoadFile(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "all", tree.Get("lang"))
}

func TestConfigInitRejects(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.json")
	assert.Error(t, (&ConfigInit{Command: "lookup", Format: "json", Output: out}).Run(discardLogger()))
	assert.Error(t, (&ConfigInit{Command: "list", Format: "ini", Output: out}).Run(discardLogger()))
}
