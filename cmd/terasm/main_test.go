package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/terasm/assembler"
)

func TestDefaultDest(t *testing.T) {
	assert.Equal(t, "prog.ter", defaultDest("prog.asm"))
	assert.Equal(t, "dir/prog.ter", defaultDest("dir/prog.asm"))
	assert.Equal(t, "prog.s.ter", defaultDest("prog.s"))
}

func TestWriteImage(t *testing.T) {
	prog, err := assembler.New().Assemble(".code\nrestart")
	require.NoError(t, err)

	dir := t.TempDir()
	dst := filepath.Join(dir, "out.ter")
	require.NoError(t, writeImage(prog, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "λλ0λ0λ 100000 00λ000\n", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRunFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.asm")
	require.NoError(t, os.WriteFile(src, []byte(".code\nrestart\njmp nowhere\n"), 0644))

	comment, base = ";", -364
	dst := defaultDest(src)
	err := run(src, dst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), src+":3:")

	_, statErr := os.Stat(dst)
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "loop.asm")
	require.NoError(t, os.WriteFile(src, []byte(".code\nSTART: mov 5 → R0\njmp START\n"), 0644))

	comment, base = ";", -364
	require.NoError(t, run(src, defaultDest(src)))

	data, err := os.ReadFile(filepath.Join(dir, "loop.ter"))
	require.NoError(t, err)
	assert.Equal(t, "00000λ 000100 001000 0001λλ\n01000λ 000100 000000 000λ01\n", string(data))
}
