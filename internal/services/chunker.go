package services

// DefaultMaxChunkChars matches the input-size ceiling of the key
// phrase extraction service.
const DefaultMaxChunkChars = 4500

type TextChunker interface {
	Chunk(text string, maxChars int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// Chunk implements TextChunker. It splits text into consecutive
// non-overlapping slices of exactly maxChars characters (the final
// slice may be shorter), covering the text exactly once. Short input,
// including the empty string, comes back as a single chunk.
func (tc *textChunker) Chunk(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChunkChars
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return []string{text}
	}

	var chunks []string
	for i := 0; i < len(runes); i += maxChars {
		end := i + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[i:end]))
	}
	return chunks
}
