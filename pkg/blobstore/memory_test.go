package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	data := []byte("%PDF-1.4 body")

	err := store.Put(ctx, "resumes/alice/1.pdf", bytes.NewReader(data), int64(len(data)), "application/pdf", map[string]string{"Owner": "alice"})
	require.NoError(t, err)

	obj, err := store.Get(ctx, "resumes/alice/1.pdf")
	require.NoError(t, err)
	defer obj.Body.Close()

	got, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, int64(len(data)), obj.Size)
	assert.Equal(t, "alice", obj.Metadata["owner"])
}

func TestMemoryStoreUnknownSize(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", bytes.NewReader([]byte("abc")), -1, "text/plain", nil))
	obj, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(3), obj.Size)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	for _, key := range []string{"resumes/bob/b.pdf", "resumes/alice/a.pdf", "resumes/bobby/c.pdf"} {
		require.NoError(t, store.Put(ctx, key, bytes.NewReader([]byte("x")), 1, "application/pdf", nil))
	}

	infos, err := store.List(ctx, "resumes/bob/")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "resumes/bob/b.pdf", infos[0].Key)

	require.NoError(t, store.Delete(ctx, "resumes/bob/b.pdf"))
	require.NoError(t, store.Delete(ctx, "resumes/bob/b.pdf"))

	infos, err = store.List(ctx, "resumes/bob/")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestMemoryStoreMetadataIsCopied(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "k", bytes.NewReader([]byte("x")), 1, "application/pdf", map[string]string{"owner": "alice"}))

	obj, err := store.Get(ctx, "k")
	require.NoError(t, err)
	obj.Metadata["owner"] = "mallory"

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "alice", again.Metadata["owner"])
}
