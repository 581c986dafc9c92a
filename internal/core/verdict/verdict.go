// Package verdict fuses classifier probability with heuristic evidence into a final decision.
//
// The fused score is raw probability plus heuristic boost and is not a probability: it can exceed 1
// and is compared against Threshold as is. Never re-normalize it; the display remapping below was
// tuned for the unbounded sum
package verdict

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"authorcheck/internal/core/patterns"
)

// Label is the authorship decision
type Label string

const (
	// LabelHuman marks text judged human-written
	LabelHuman Label = "Human-Written"
	// LabelAI marks text judged machine-generated
	LabelAI Label = "AI-Generated"
)

const (
	// MinChars is the shortest text, in characters, that is scored at all
	MinChars = 60
	// Threshold is the fused score above which text is labelled AI
	Threshold = 0.10

	// AIFloor and AISpan map (Threshold, 1] onto [60, 100) for AI verdicts
	AIFloor = 60.0
	AISpan  = 40.0
	// AICap keeps AI verdicts short of certainty
	AICap = 99.9

	// KeywordsShown bounds how many matched phrases the explanation names
	KeywordsShown = 2
)

// Explanations
const (
	MsgTooShort    = "Text too short for analysis."
	MsgLowVariance = "Inspector detected low semantic variance typical of AI."
	MsgHuman       = "High structural burstiness suggests natural human authorship."

	msgKeywordsFmt = "Model detected robotic structure. Flagged keywords: '%s'."
)

// Verdict is the terminal output of the engine
type Verdict struct {
	Label        Label   `json:"label"   example:"AI-Generated"`
	DisplayScore float64 `json:"score"   example:"62.22"`
	IsAI         bool    `json:"is_ai"   example:"true"`
	Message      string  `json:"message" example:"Model detected robotic structure. Flagged keywords: 'in conclusion'."`
}

// ShortText is the verdict for text below MinChars
func ShortText() Verdict {
	return Verdict{Label: LabelHuman, DisplayScore: 100, IsAI: false, Message: MsgTooShort}
}

// IsShort reports whether text falls below MinChars, counted in code points
func IsShort(text string) bool {
	return utf8.RuneCountInString(text) < MinChars
}

// Fuse is the additive fusion of classifier probability and heuristic boost
func Fuse(rawAI, boost float64) float64 { return rawAI + boost }

// Combine produces the verdict for text from its heuristics and raw classifier probability.
// The short-text guard wins over any evidence
func Combine(text string, h patterns.Result, rawAI float64) Verdict {
	if IsShort(text) {
		return ShortText()
	}
	return Decide(Fuse(rawAI, h.Boost), h.Matches)
}

// Decide maps a fused score and its matched phrases onto a verdict
func Decide(final float64, matches []string) Verdict {
	if final > Threshold {
		score := AIFloor + (final-Threshold)/(1-Threshold)*AISpan
		if score > AICap {
			score = AICap
		}
		return Verdict{
			Label:        LabelAI,
			DisplayScore: Round2(score),
			IsAI:         true,
			Message:      explain(matches),
		}
	}

	// unclamped; final >= 0 whenever both inputs are, so this stays within [0, 100]
	return Verdict{
		Label:        LabelHuman,
		DisplayScore: Round2((1 - final) * 100),
		IsAI:         false,
		Message:      MsgHuman,
	}
}

// explain names at most the first KeywordsShown matches
func explain(matches []string) string {
	if len(matches) == 0 {
		return MsgLowVariance
	}
	shown := matches
	if len(shown) > KeywordsShown {
		shown = shown[:KeywordsShown]
	}
	return fmt.Sprintf(msgKeywordsFmt, strings.Join(shown, ", "))
}

// Round2 rounds to two decimals, half to even on the exact binary value
func Round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}
