package patterns

import (
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result is the heuristic evidence for one text
type Result struct {
	// Boost is the additive suspicion score, never capped here
	Boost float64 `json:"boost"`
	// Matches lists matched phrases in pack order, each at most once
	Matches []string `json:"matches"`
}

// Casers carry transform state and must not be shared between goroutines
var caserPool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

// lower applies full Unicode lower-case mapping
func lower(s string) string {
	if s == "" {
		return s
	}
	c := caserPool.Get().(*cases.Caser)
	out := c.String(s)
	c.Reset()
	caserPool.Put(c)
	return out
}

// Scanner tests text for every phrase of a Pack
type Scanner struct {
	pack *Pack
	ac   *automaton
}

// NewScanner builds a Scanner over p
func NewScanner(p *Pack) *Scanner {
	ac := newAutomaton()
	for i, ph := range p.phrases {
		ac.add([]byte(ph), i)
	}
	ac.build()
	return &Scanner{pack: p, ac: ac}
}

// Pack returns the pack the scanner was built from
func (s *Scanner) Pack() *Pack { return s.pack }

// Scan lowers text and reports every pack phrase it contains as a substring.
// It has no failure mode; empty text yields a zero boost and no matches
func (s *Scanner) Scan(text string) Result {
	res := Result{Matches: []string{}}
	if text == "" {
		return res
	}

	found := s.ac.present([]byte(lower(text)))
	for i, ph := range s.pack.phrases {
		if !found[i] {
			continue
		}
		// summed hit by hit, so three hits give 0.44999999999999996 rather than 0.45
		res.Boost += s.pack.Increment
		res.Matches = append(res.Matches, ph)
	}
	return res
}
