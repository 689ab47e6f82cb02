package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestSave(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	require.NoError(t, err)

	name, err := store.Save("image", fileHeader(t, "foto.png", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.True(t, store.Exists(name))

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	require.NoError(t, err)

	fh := fileHeader(t, "a.jpg", "image/jpeg", []byte("x"))
	n1, err := store.Save("image", fh)
	require.NoError(t, err)
	n2, err := store.Save("image", fh)
	require.NoError(t, err)
	assert.NotEqual(t, n1, n2)
}

func TestSaveRejectsTooLarge(t *testing.T) {
	store, err := NewStore(t.TempDir(), 4)
	require.NoError(t, err)

	_, err = store.Save("image", fileHeader(t, "big.png", "image/png", []byte("12345")))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestSaveRejectsNonImage(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	require.NoError(t, err)

	_, err = store.Save("image", fileHeader(t, "doc.pdf", "application/pdf", []byte("%PDF")))
	assert.ErrorIs(t, err, ErrNotImage)
	// 校验失败不能留下任何文件
	entries, readErr := os.ReadDir(store.Dir())
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	store, err := NewStore(t.TempDir(), 1024)
	require.NoError(t, err)

	name, err := store.Save("image", fileHeader(t, "x.png", "image/png", []byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	assert.False(t, store.Exists(name))

	// 文件不存在视为成功
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}
