package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	extractFn func(ctx context.Context, languageCode, chunk string) ([]string, error)
	calls     int
}

func (f *fakeExtractor) Extract(ctx context.Context, languageCode, chunk string) ([]string, error) {
	f.calls++
	return f.extractFn(ctx, languageCode, chunk)
}

func newTestPhraseService(extractor KeyPhraseExtractor) PhraseService {
	return NewPhraseService(extractor, NewTextChunker(), "en", 4500, 6)
}

func TestExtractKeyPhrasesCleansAndDedupes(t *testing.T) {
	extractor := &fakeExtractor{
		extractFn: func(ctx context.Context, languageCode, chunk string) ([]string, error) {
			return []string{
				"  Machine Learning!  ",
				"(Python)",
				"machine learning",
				"",
				"!!!",
			}, nil
		},
	}
	service := newTestPhraseService(extractor)

	phrases, err := service.ExtractKeyPhrases(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, []string{"machine learning", "python"}, phrases)
}

func TestExtractKeyPhrasesDropsOverlongPhrases(t *testing.T) {
	extractor := &fakeExtractor{
		extractFn: func(ctx context.Context, languageCode, chunk string) ([]string, error) {
			return []string{
				"short phrase",
				"one two three four five six seven",
			}, nil
		},
	}
	service := newTestPhraseService(extractor)

	phrases, err := service.ExtractKeyPhrases(context.Background(), "some text")

	require.NoError(t, err)
	assert.Equal(t, []string{"short phrase"}, phrases)
}

func TestExtractKeyPhrasesCallsExtractorPerChunk(t *testing.T) {
	extractor := &fakeExtractor{
		extractFn: func(ctx context.Context, languageCode, chunk string) ([]string, error) {
			return []string{chunk[:3]}, nil
		},
	}
	service := NewPhraseService(extractor, NewTextChunker(), "en", 10, 6)

	// 25 chars at 10 per chunk makes 3 calls
	_, err := service.ExtractKeyPhrases(context.Background(), strings.Repeat("abcdefghij", 2)+"klmno")

	require.NoError(t, err)
	assert.Equal(t, 3, extractor.calls)
}

func TestExtractKeyPhrasesPropagatesFailure(t *testing.T) {
	extractorErr := errors.New("rate limited")
	extractor := &fakeExtractor{
		extractFn: func(ctx context.Context, languageCode, chunk string) ([]string, error) {
			return nil, extractorErr
		},
	}
	service := newTestPhraseService(extractor)

	phrases, err := service.ExtractKeyPhrases(context.Background(), "some text")

	require.Error(t, err)
	assert.ErrorIs(t, err, extractorErr)
	assert.Nil(t, phrases)
}

func TestExtractKeyPhrasesPassesLanguageCode(t *testing.T) {
	var gotLanguage string
	extractor := &fakeExtractor{
		extractFn: func(ctx context.Context, languageCode, chunk string) ([]string, error) {
			gotLanguage = languageCode
			return nil, nil
		},
	}
	service := newTestPhraseService(extractor)

	_, err := service.ExtractKeyPhrases(context.Background(), "text")

	require.NoError(t, err)
	assert.Equal(t, "en", gotLanguage)
}
