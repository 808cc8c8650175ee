package services

import (
	"context"
	"fmt"
	"strings"
)

// KeyPhraseExtractor is the external phrase-extraction capability.
// Implementations return raw phrase strings with no guaranteed
// cleanliness; the phrase service normalizes the output.
type KeyPhraseExtractor interface {
	Extract(ctx context.Context, languageCode string, chunk string) ([]string, error)
}

type PhraseService interface {
	ExtractKeyPhrases(ctx context.Context, text string) ([]string, error)
}

type phraseService struct {
	extractor      KeyPhraseExtractor
	chunker        TextChunker
	languageCode   string
	maxChunkChars  int
	maxPhraseWords int
}

func NewPhraseService(
	extractor KeyPhraseExtractor,
	chunker TextChunker,
	languageCode string,
	maxChunkChars int,
	maxPhraseWords int,
) PhraseService {
	return &phraseService{
		extractor:      extractor,
		chunker:        chunker,
		languageCode:   languageCode,
		maxChunkChars:  maxChunkChars,
		maxPhraseWords: maxPhraseWords,
	}
}

// ExtractKeyPhrases implements PhraseService. It calls the extractor
// once per chunk, cleans every returned phrase, drops empty or
// overlong phrases and dedupes preserving first-seen order. Any
// extractor failure aborts the whole extraction; there is no retry
// and no partial result.
func (s *phraseService) ExtractKeyPhrases(ctx context.Context, text string) ([]string, error) {
	var phrases []string

	for _, chunk := range s.chunker.Chunk(text, s.maxChunkChars) {
		raw, err := s.extractor.Extract(ctx, s.languageCode, chunk)
		if err != nil {
			return nil, fmt.Errorf("failed to extract key phrases: %w", err)
		}

		for _, p := range raw {
			cleaned := CleanPhrase(p)
			if cleaned == "" || len(strings.Fields(cleaned)) > s.maxPhraseWords {
				continue
			}
			phrases = append(phrases, cleaned)
		}
	}

	return DedupePreserveOrder(phrases), nil
}
