package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := NewRootCommand(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	cmd.SetOut(&stderr)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestLoad_Args(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "", "mine", "leg", "lin", "LEG", "leg")
	require.NoError(t, err)

	assert.Equal(t, "size=3 nodes=2 depth=2\nleg\t2\nlin\t1\nmine\t1\n", stdout)
	assert.Contains(t, stderr, `skipping: insert "LEG": invalid key`)
}

func TestLoad_FileAndStdin(t *testing.T) {
	t.Parallel()

	var (
		dir  = t.TempDir()
		name = filepath.Join(dir, "words.txt")
	)

	require.NoError(t, os.WriteFile(name, []byte("Mine, leg!\nlin 42 leg"), 0o600))

	stdout, _, err := run(t, "lint", "--file", name, "--file", "-", "--prefix", "li")
	require.NoError(t, err)

	assert.Equal(t, "size=4 nodes=4 depth=4\nlin\t1\nlint\t1\n", stdout)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "", "--file", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening")
}

func TestLoad_DeletePathsDump(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := run(t, "", "--paths", "--dump", "-d", "lin,zzz", "leg", "lin", "mine")
	require.NoError(t, err)

	assert.Contains(t, stderr, `skipping: delete "zzz": key not found`)
	assert.True(t, strings.HasPrefix(stdout, "size=2 nodes=1 depth=1\n"), stdout)
	assert.Contains(t, stdout, "11(l)")
	assert.Contains(t, stdout, "12(m)")
	assert.Contains(t, stdout, `[l] LEAF key="leg" val=1`)
	assert.NotContains(t, stdout, "lin")
}

func TestLoad_Verbose(t *testing.T) {
	t.Parallel()

	_, stderr, err := run(t, "", "-v", "leg", "lin")
	require.NoError(t, err)

	assert.Contains(t, stderr, "split")
	assert.Contains(t, stderr, `"existing": "leg"`)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	for in, exp := range map[string]string{
		"Mine,":   "mine",
		"don't":   "dont",
		"42":      "",
		"Ünïcode": "ncode",
		"leg":     "leg",
	} {
		assert.Equal(t, exp, normalize(in), in)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "11(l) 4(e) $", formatPath([]int{11, 4, 26}))
	assert.Equal(t, "", formatPath(nil))
}
