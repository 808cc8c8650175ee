package services

import (
	"regexp"
	"strings"
)

var (
	spaceRegex = regexp.MustCompile(`\s+`)
	tokenRegex = regexp.MustCompile(`[a-zA-Z0-9\+\.\-]+`)
)

// Basic stopwords to reduce noise; kept small to avoid false negatives.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "for": true, "to": true, "in": true, "on": true,
	"with": true, "by": true, "at": true, "from": true, "as": true,
	"is": true, "are": true, "be": true, "being": true, "been": true,
	"that": true, "this": true, "it": true, "its": true,
	"you": true, "your": true, "we": true, "our": true, "us": true,
}

// NormalizeSpace trims, lowercases and collapses whitespace runs to
// single spaces.
func NormalizeSpace(s string) string {
	return spaceRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), " ")
}

// Tokenize splits a string into word-like tokens, dropping stopwords
// and single-character tokens. Order is preserved and duplicates are
// retained; callers build sets where uniqueness matters.
func Tokenize(s string) []string {
	var tokens []string
	for _, t := range tokenRegex.FindAllString(strings.ToLower(s), -1) {
		if len(t) <= 1 || stopwords[t] {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}
