package classifier

import (
	"bytes"
	"encoding/json"

	perr "authorcheck/internal/platform/errors"
)

// LabelScore is one entry of a label distribution
type LabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// aiLabels name the machine-generated class; LABEL_0 is the zero-index class
// of two-class heads exported without label names
var aiLabels = map[string]struct{}{
	"Fake":    {},
	"LABEL_0": {},
}

// Normalize turns a backend response into a flat label distribution.
// Both [{label,score}...] and [[{label,score}...], ...] are accepted; for the nested batch shape
// only the first sequence is read
func Normalize(raw json.RawMessage) ([]LabelScore, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(raw, &outer); err != nil {
		return nil, perr.Classificationf("unexpected classifier output: %v", err)
	}
	if len(outer) == 0 {
		return nil, perr.Classificationf("empty classifier output")
	}

	list := raw
	if first := bytes.TrimSpace(outer[0]); len(first) > 0 && first[0] == '[' {
		list = first
	}

	var scores []LabelScore
	if err := json.Unmarshal(list, &scores); err != nil {
		return nil, perr.Classificationf("unexpected classifier output: %v", err)
	}
	return scores, nil
}

// RawAIProbability returns the score of the AI label. When several entries carry an AI label the
// last one wins. ok is false when no AI label is present, in which case the probability is 0
func RawAIProbability(scores []LabelScore) (p float64, ok bool) {
	for _, s := range scores {
		if _, hit := aiLabels[s.Label]; hit {
			p, ok = s.Score, true
		}
	}
	return p, ok
}

// Truncate keeps the first maxChars code points of text
func Truncate(text string, maxChars int) string {
	if maxChars <= 0 {
		return text
	}
	n := 0
	for i := range text {
		if n == maxChars {
			return text[:i]
		}
		n++
	}
	return text
}
