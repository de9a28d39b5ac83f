package uploads_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stride-commerce/stride/internal/uploads"
)

func TestStoreWritesFileAndReturnsPublicPath(t *testing.T) {
	dir := t.TempDir()
	svc, err := uploads.NewService(dir)
	require.NoError(t, err)

	path, err := svc.Store(strings.NewReader("image-bytes"), "shoe.png")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, uploads.URLPrefix))
	require.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(dir, strings.TrimPrefix(path, uploads.URLPrefix))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(content))
}

func TestStoreKeepsExtensionOnly(t *testing.T) {
	svc, err := uploads.NewService(t.TempDir())
	require.NoError(t, err)

	path, err := svc.Store(strings.NewReader("x"), "weird name.with.dots.jpeg")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".jpeg"))
	require.NotContains(t, path, "weird")
}

func TestNewServiceCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := uploads.NewService(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
