package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeModule(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"go.mod": "module example.com/m\n\ngo 1.23\n",
		"examples/examples.go": `package examples

type Examples struct {
	//fieldguard:NoManualSet
	blabla int

	//fieldguard:Frozen
	frozen int
}

func NewExamples() *Examples {
	e := &Examples{}
	e.blabla = 5
	e.frozen = 1
	return e
}

func (e *Examples) SetBlabla(value int) {
	e.blabla = value
}
`,
		"frozen.yaml": "rules:\n  - id: RO004\n    enabled: true\n    severity: warning\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func TestCheck_JSON(t *testing.T) {
	dir := writeModule(t)

	out, err := runCmd(t,
		"check", "--color", "off", "--config", filepath.Join(dir, "frozen.yaml"),
		"-C", dir, "--format", "json", "./...",
	)

	var exit *exitError
	require.True(t, errors.As(err, &exit), "exit error expected, got %v", err)
	assert.Equal(t, 1, exit.code)

	var got []jsonDiagnostic
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "RO004", got[0].Rule)
	assert.Equal(t, "frozen", got[0].Symbol)
	assert.Equal(t, 14, got[0].Line)

	assert.Equal(t, "RO001", got[1].Rule)
	assert.Equal(t, "blabla", got[1].Symbol)
	assert.Equal(t, 19, got[1].Line)
	assert.Equal(t, 2, got[1].Column)
	assert.Equal(t, 18, got[1].EndColumn)
}

func TestCheck_Text(t *testing.T) {
	dir := writeModule(t)

	out, err := runCmd(t, "check", "--color", "off", "-C", dir, "./examples")
	require.Error(t, err)

	assert.Contains(t, out, "examples.go:19:2: error RO001: field blabla of Examples marked with NoManualSet should not be assigned manually\n")
	assert.NotContains(t, out, "RO004")
}

func TestCheck_ConfigFromDir(t *testing.T) {
	dir := writeModule(t)
	config := "writes: all\nrules:\n  - id: RO004\n    enabled: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".fieldguard.yaml"), []byte(config), 0o644))

	out, err := runCmd(t, "check", "--color", "off", "--verbose", "-C", dir, "./examples")
	require.Error(t, err)

	assert.Contains(t, out, "config loaded")
	assert.Contains(t, out, "writes=all")
	assert.Contains(t, out, "examples.go:14:2: error RO004: field frozen marked with Frozen should never be assigned\n")
	assert.Contains(t, out, "examples.go:19:2: error RO001:")
}

func TestCheck_BadFormat(t *testing.T) {
	_, err := runCmd(t, "check", "--format", "xml")
	require.ErrorContains(t, err, "unknown output format")
}

func TestRules(t *testing.T) {
	out, err := runCmd(t, "rules", "--color", "off")
	require.NoError(t, err)

	for _, id := range []string{"RO001", "RO002", "RO003", "RO004", "NoManualSet", "constructor"} {
		assert.Contains(t, out, id)
	}

	out, err = runCmd(t, "rules", "--json")
	require.NoError(t, err)

	var infos []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 4)
	assert.Equal(t, "RO001", infos[0]["id"])
	assert.Equal(t, "error", infos[0]["severity"])
	assert.Equal(t, "constructor", infos[0]["policy"])
}
