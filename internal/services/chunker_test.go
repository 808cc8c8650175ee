package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	assert.Equal(t, []string{"hello"}, chunker.Chunk("hello", 4500))
	assert.Equal(t, []string{""}, chunker.Chunk("", 4500))
}

func TestChunkExactSplit(t *testing.T) {
	chunker := NewTextChunker()
	text := strings.Repeat("x", 10000)

	chunks := chunker.Chunk(text, 4500)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4500)
	assert.Len(t, chunks[1], 4500)
	assert.Len(t, chunks[2], 1000)
}

func TestChunkLossless(t *testing.T) {
	chunker := NewTextChunker()
	text := strings.Repeat("abcdefg ", 2000)

	chunks := chunker.Chunk(text, 4500)

	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestChunkBoundary(t *testing.T) {
	chunker := NewTextChunker()

	// Exactly at the limit stays whole
	atLimit := strings.Repeat("x", 10)
	assert.Equal(t, []string{atLimit}, chunker.Chunk(atLimit, 10))

	// One over splits
	over := strings.Repeat("x", 11)
	chunks := chunker.Chunk(over, 10)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[1], 1)
}

func TestChunkCountsRunesNotBytes(t *testing.T) {
	chunker := NewTextChunker()
	text := strings.Repeat("é", 6)

	chunks := chunker.Chunk(text, 4)

	require.Len(t, chunks, 2)
	assert.Equal(t, "éééé", chunks[0])
	assert.Equal(t, "éé", chunks[1])
}

func TestChunkDefaultsInvalidMaxChars(t *testing.T) {
	chunker := NewTextChunker()
	text := strings.Repeat("x", 100)

	assert.Equal(t, []string{text}, chunker.Chunk(text, 0))
}
