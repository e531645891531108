package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-board-service/internal/config"
)

func newLocal(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	local, err := NewLocalStorage(config.StorageConfig{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)
	return local, dir
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	local, dir := newLocal(t)
	ctx := context.Background()

	url, err := local.Upload(ctx, "resumes/ada.pdf", strings.NewReader("resume body"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/resumes/ada.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "resumes", "ada.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "resume body", string(data))

	require.NoError(t, local.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(dir, "resumes", "ada.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	local, _ := newLocal(t)
	assert.NoError(t, local.Delete(context.Background(), "/uploads/resumes/ghost.pdf"))
}

func TestLocalStorage_DeleteIgnoresForeignURLs(t *testing.T) {
	local, dir := newLocal(t)
	ctx := context.Background()

	url, err := local.Upload(ctx, "resumes/keep.pdf", strings.NewReader("x"), "application/pdf")
	require.NoError(t, err)
	require.Equal(t, "/uploads/resumes/keep.pdf", url)

	// A URL from another origin maps to no key here.
	require.NoError(t, local.Delete(ctx, "https://elsewhere.example.com/resumes/keep.pdf"))
	_, err = os.Stat(filepath.Join(dir, "resumes", "keep.pdf"))
	assert.NoError(t, err)
}

func TestLocalStorage_UploadSanitizesTraversal(t *testing.T) {
	local, dir := newLocal(t)

	url, err := local.Upload(context.Background(), "../../etc/passwd", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/etc/passwd", url)

	// The file lands inside the base directory, not two levels up.
	_, err = os.Stat(filepath.Join(dir, "etc", "passwd"))
	assert.NoError(t, err)
}

func TestLocalStorage_RequiresBasePath(t *testing.T) {
	_, err := NewLocalStorage(config.StorageConfig{})
	assert.Error(t, err)
}
