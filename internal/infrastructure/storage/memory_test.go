package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("upload download round trip", func(t *testing.T) {
		s := NewMemoryStorage()
		require.NoError(t, s.Upload(ctx, "resumes/a.pdf", []byte("content"), "application/pdf"))

		data, err := s.Download(ctx, "resumes/a.pdf")
		require.NoError(t, err)
		assert.Equal(t, []byte("content"), data)
	})

	t.Run("stored bytes are isolated from the caller's slice", func(t *testing.T) {
		s := NewMemoryStorage()
		buf := []byte("original")
		require.NoError(t, s.Upload(ctx, "k", buf, "text/plain"))
		buf[0] = 'X'

		data, err := s.Download(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), data)
	})

	t.Run("missing object errors on download", func(t *testing.T) {
		s := NewMemoryStorage()
		_, err := s.Download(ctx, "missing")
		assert.Error(t, err)
	})

	t.Run("exists and delete", func(t *testing.T) {
		s := NewMemoryStorage()
		require.NoError(t, s.Upload(ctx, "k", []byte("v"), "text/plain"))

		ok, err := s.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, s.Delete(ctx, "k"))
		ok, _ = s.Exists(ctx, "k")
		assert.False(t, ok)

		// deleting again is not an error
		require.NoError(t, s.Delete(ctx, "k"))
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		s := NewMemoryStorage()
		assert.Error(t, s.Upload(ctx, "", []byte("v"), "text/plain"))
		_, _, err := s.GenerateDownloadURL(ctx, "", time.Minute)
		assert.Error(t, err)
	})
}
