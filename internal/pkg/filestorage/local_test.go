package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fileHeader, err := req.FormFile("file")
	assert.NoError(t, err)
	return fileHeader
}

func TestSaveFile_StoresUnderUniqueNameWithPublicURL(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	assert.NoError(t, err)

	path, err := storage.SaveFile(newTestFileHeader(t, "avatar.png", "not really a png"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "http://localhost:8080/uploads/"))
	assert.Equal(t, ".png", filepath.Ext(path))

	stored, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	assert.NoError(t, err)
	assert.Equal(t, "not really a png", string(stored))
}

func TestDeleteFile_RemovesStoredFileAndIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "http://localhost:8080/uploads")
	assert.NoError(t, err)

	path, err := storage.SaveFile(newTestFileHeader(t, "avatar.jpg", "bytes"))
	assert.NoError(t, err)

	assert.NoError(t, storage.DeleteFile(path))
	_, statErr := os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(statErr))

	// Deleting again is not an error
	assert.NoError(t, storage.DeleteFile(path))
	assert.NoError(t, storage.DeleteFile(""))
}
