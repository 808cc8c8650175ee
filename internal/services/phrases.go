package services

import "regexp"

// Leading/trailing runs of non-word characters; internal symbols like
// "+", "-" and "&" stay untouched. Word characters are Unicode
// letters/digits plus underscore, so accented phrases survive intact.
var outerPunctRegex = regexp.MustCompile(`^[^\p{L}\p{N}_]+|[^\p{L}\p{N}_]+$`)

// CleanPhrase normalizes whitespace/case and strips outer punctuation
// from a raw extracted phrase.
func CleanPhrase(p string) string {
	return outerPunctRegex.ReplaceAllString(NormalizeSpace(p), "")
}

// DedupePreserveOrder drops empty strings and duplicates, keeping the
// first occurrence's position.
func DedupePreserveOrder(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
