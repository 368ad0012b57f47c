package docparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	p := NewParser()

	t.Run("plain text passes through", func(t *testing.T) {
		text, err := p.ExtractText([]byte("hello world"), "text/plain")
		require.NoError(t, err)
		assert.Equal(t, "hello world", text)
	})

	t.Run("charset parameter is ignored", func(t *testing.T) {
		text, err := p.ExtractText([]byte("hi"), "text/plain; charset=utf-8")
		require.NoError(t, err)
		assert.Equal(t, "hi", text)
	})

	t.Run("empty document is rejected", func(t *testing.T) {
		_, err := p.ExtractText(nil, "text/plain")
		assert.Error(t, err)
	})

	t.Run("image is rejected with a pointer to multimodal", func(t *testing.T) {
		_, err := p.ExtractText([]byte{0x89, 0x50}, "image/png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multimodal")
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := p.ExtractText([]byte("x"), "application/zip")
		assert.Error(t, err)
	})
}

func TestMimeClassification(t *testing.T) {
	assert.True(t, IsPDF("application/pdf"))
	assert.True(t, IsPDF("Application/PDF"))
	assert.False(t, IsPDF("text/plain"))

	assert.True(t, IsImage("image/png"))
	assert.True(t, IsImage("image/jpeg; q=1"))
	assert.False(t, IsImage("application/pdf"))
}
