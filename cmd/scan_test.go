package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestScanCommandRendersTree(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "a.txt"), []byte("x"), 0o644))

	out, errOut, err := execute(t, "scan", tmp)
	require.NoError(t, err)
	assert.Contains(t, out, "Folder Tree: "+tmp)
	assert.Contains(t, out, "└── a.txt")
	assert.Contains(t, errOut, "Scan complete. Found 1 items.")
}

func TestScanCommandInvalidPath(t *testing.T) {
	_, _, err := execute(t, "scan", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid folder path")
	assert.False(t, strings.HasPrefix(err.Error(), "Error:"),
		"status prefix must not leak into the returned error: %q", err.Error())
}
