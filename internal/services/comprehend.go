package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/comprehend"
	"github.com/aws/aws-sdk-go-v2/service/comprehend/types"
)

type comprehendExtractor struct {
	client *comprehend.Client
}

// NewComprehendExtractor returns a KeyPhraseExtractor backed by
// Amazon Comprehend's DetectKeyPhrases API.
func NewComprehendExtractor(awsCfg aws.Config) KeyPhraseExtractor {
	return &comprehendExtractor{
		client: comprehend.NewFromConfig(awsCfg),
	}
}

// Extract implements KeyPhraseExtractor.
func (c *comprehendExtractor) Extract(ctx context.Context, languageCode string, chunk string) ([]string, error) {
	resp, err := c.client.DetectKeyPhrases(ctx, &comprehend.DetectKeyPhrasesInput{
		Text:         aws.String(chunk),
		LanguageCode: types.LanguageCode(languageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect key phrases: %w", err)
	}

	phrases := make([]string, 0, len(resp.KeyPhrases))
	for _, kp := range resp.KeyPhrases {
		if kp.Text != nil {
			phrases = append(phrases, *kp.Text)
		}
	}
	return phrases, nil
}
