package services

import (
	"sort"

	"apoorvcs/resume-matcher/internal/models"
)

// Jaccard computes set-intersection over set-union of two token
// slices. Two empty sets score 0.0, not NaN.
func Jaccard(aTokens, bTokens []string) float64 {
	a := tokenSet(aTokens)
	b := tokenSet(bTokens)
	if len(a) == 0 && len(b) == 0 {
		return 0.0
	}

	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// BestPairs finds, for each resume phrase, its single best-matching
// job description phrase by Jaccard score. Ties keep the first JD
// phrase in list order (strict > comparison); phrases whose best
// score is 0.0 produce no pair. Pairs come back sorted descending by
// score (stable, so equal scores keep resume-list order), capped at
// topK.
func BestPairs(resumePhrases, jdPhrases []string, topK int) []models.MatchPair {
	jdTokens := make([][]string, len(jdPhrases))
	for i, p := range jdPhrases {
		jdTokens[i] = Tokenize(p)
	}

	var pairs []models.MatchPair
	for _, rp := range resumePhrases {
		rTokens := Tokenize(rp)
		bestScore, bestJD := 0.0, ""
		for i, jt := range jdTokens {
			if score := Jaccard(rTokens, jt); score > bestScore {
				bestScore, bestJD = score, jdPhrases[i]
			}
		}
		if bestScore > 0.0 {
			pairs = append(pairs, models.MatchPair{
				ResumePhrase: rp,
				JDPhrase:     bestJD,
				Score:        bestScore,
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	if len(pairs) > topK {
		pairs = pairs[:topK]
	}
	return pairs
}

// Coverage returns the fraction of job description phrases whose best
// Jaccard score against any resume phrase meets thresh. An empty JD
// list covers nothing.
func Coverage(jdPhrases, resumePhrases []string, thresh float64) float64 {
	if len(jdPhrases) == 0 {
		return 0.0
	}

	resumeTokens := make([][]string, len(resumePhrases))
	for i, p := range resumePhrases {
		resumeTokens[i] = Tokenize(p)
	}

	hits := 0
	for _, jp := range jdPhrases {
		jTokens := Tokenize(jp)
		best := 0.0
		for _, rt := range resumeTokens {
			if score := Jaccard(jTokens, rt); score > best {
				best = score
			}
		}
		if best >= thresh {
			hits++
		}
	}
	return float64(hits) / float64(len(jdPhrases))
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
