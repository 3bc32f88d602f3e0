package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	st, err := NewLocalStorage(Config{
		BasePath: t.TempDir(),
		BaseURL:  "/public",
	})
	require.NoError(t, err)
	return st
}

func TestLocalStorageSaveAndGet(t *testing.T) {
	st := newLocal(t)
	ctx := context.Background()

	err := st.Save(ctx, "peliculas/1.jpg", strings.NewReader("contenido"), "image/jpeg")
	require.NoError(t, err)

	exists, err := st.Exists(ctx, "peliculas/1.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := st.Get(ctx, "peliculas/1.jpg")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "contenido", string(data))
}

func TestLocalStorageSaveOverwrites(t *testing.T) {
	st := newLocal(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "personas/7.jpg", strings.NewReader("primera"), "image/jpeg"))
	require.NoError(t, st.Save(ctx, "personas/7.jpg", strings.NewReader("segunda"), "image/jpeg"))

	reader, err := st.Get(ctx, "personas/7.jpg")
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "segunda", string(data))
}

func TestLocalStorageDelete(t *testing.T) {
	st := newLocal(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "peliculas/3.jpg", strings.NewReader("x"), "image/jpeg"))
	require.NoError(t, st.Delete(ctx, "peliculas/3.jpg"))

	exists, err := st.Exists(ctx, "peliculas/3.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	// deleting a missing file is not an error
	assert.NoError(t, st.Delete(ctx, "peliculas/3.jpg"))
}

func TestLocalStorageGetURL(t *testing.T) {
	st := newLocal(t)

	url, err := st.GetURL(context.Background(), "peliculas/9.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/public/peliculas/9.jpg", url)
}
