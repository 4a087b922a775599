package filestore

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndRemove(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "/static/")
	require.NoError(t, err)

	stored, err := store.Save(fileHeader(t, "Lecture Notes.PDF", "hello"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored.Name, ".pdf"))
	assert.Equal(t, "/static/materials/"+stored.Name, stored.URL)
	assert.EqualValues(t, 5, stored.Size)

	data, err := os.ReadFile(filepath.Join(root, "materials", stored.Name))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, store.Remove(stored.Name))
	_, err = os.Stat(filepath.Join(root, "materials", stored.Name))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/static")
	require.NoError(t, err)

	a, err := store.Save(fileHeader(t, "same.txt", "a"))
	require.NoError(t, err)
	b, err := store.Save(fileHeader(t, "same.txt", "b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Name, b.Name)
}

func TestRemoveRejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "/static")
	require.NoError(t, err)

	for _, name := range []string{"", "../secret", "a/b", ".hidden"} {
		assert.ErrorIs(t, store.Remove(name), ErrInvalidName, name)
	}
}

func TestSafeExt(t *testing.T) {
	assert.Equal(t, ".png", safeExt("photo.PNG"))
	assert.Equal(t, "", safeExt("archive"))
	assert.Equal(t, "", safeExt("weird.p$p"))
	assert.Equal(t, "", safeExt("x.thisiswaytoolong"))
}
