package models

type MatchRequest struct {
	JDText     string `json:"jd_text"`
	ResumeText string `json:"resume_text"`
}

// MatchPair is one resume phrase aligned to its best-scoring
// job description phrase.
type MatchPair struct {
	ResumePhrase string  `json:"resume_phrase"`
	JDPhrase     string  `json:"jd_phrase"`
	Score        float64 `json:"score"`
}

type MatchReport struct {
	OverallMatchScore float64     `json:"overall_match_score"`
	JDKeyPhrases      []string    `json:"jd_key_phrases"`
	ResumeKeyPhrases  []string    `json:"resume_key_phrases"`
	TopMatches        []MatchPair `json:"top_matches"`
}
