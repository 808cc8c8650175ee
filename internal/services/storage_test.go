package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["resume"][0]
}

func TestStorageSaveGetDeleteRoundTrip(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	header := multipartHeader(t, "my resume.pdf", []byte("pdf bytes"))

	storedName, storedPath, err := storage.SaveFile(header, "resume")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(storedName, "resume_"))
	assert.Equal(t, ".pdf", filepath.Ext(storedName))
	assert.Equal(t, storedPath, storage.GetFilePath(storedName))

	saved, err := os.ReadFile(storedPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf bytes"), saved)

	require.NoError(t, storage.DeleteFile(storedName))
	_, err = os.Stat(storedPath)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageRejectsUnsupportedExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	header := multipartHeader(t, "resume.txt", []byte("plain text"))

	_, _, err := storage.SaveFile(header, "resume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}

func TestStorageEnsureUploadDirCreatesNestedPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "uploads")
	storage := NewStorageService(path)

	require.NoError(t, storage.EnsureUploadDir())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
