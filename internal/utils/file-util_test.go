package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchFile(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestFindLatestFileWithPrefix(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	touchFile(t, dir, "Factory_A_0801.xlsx", base)
	want := touchFile(t, dir, "Factory_A_0815.xlsx", base.Add(14*24*time.Hour))
	touchFile(t, dir, "Factory_B_0820.xlsx", base.Add(19*24*time.Hour))

	got, err := FindLatestFileWithPrefix(dir, "Factory_A")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindLatestFileWithPrefixNoMatch(t *testing.T) {
	dir := t.TempDir()
	touchFile(t, dir, "Factory_B_0820.xlsx", time.Now())

	_, err := FindLatestFileWithPrefix(dir, "Factory_A")
	assert.Error(t, err)
}

func TestGetLatestFileSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Factory_A_archive"), 0o755))
	want := touchFile(t, dir, "Factory_A_0815.xlsx", time.Now())

	got, err := FindLatestFileWithPrefix(dir, "Factory_A")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
