package paraphraser

// DecodingConfig is the generation setup sent with every request
type DecodingConfig struct {
	NumBeams           int     `json:"num_beams"`
	NumReturnSequences int     `json:"num_return_sequences"`
	RepetitionPenalty  float64 `json:"repetition_penalty"`
	NoRepeatNGramSize  int     `json:"no_repeat_ngram_size"`
	Temperature        float64 `json:"temperature"`
	MaxLength          int     `json:"max_length"`
}

// DefaultDecoding is beam search over 5 beams returning one sequence of at most 256 tokens
func DefaultDecoding() DecodingConfig {
	return DecodingConfig{
		NumBeams:           5,
		NumReturnSequences: 1,
		RepetitionPenalty:  1.5,
		NoRepeatNGramSize:  3,
		Temperature:        0.9,
		MaxLength:          256,
	}
}
