// Package patterns loads the embedded AI-ism phrase pack and scans text for it.
// The pack is parsed once and never mutated; scanners built from it are safe for concurrent use
package patterns

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed patterns.json
var embedded []byte

// seam for tests
var source = func() []byte { return embedded }

type rawPack struct {
	Version   int            `json:"version"`
	Meta      map[string]any `json:"meta"`
	Increment float64        `json:"increment"`
	Phrases   []string       `json:"phrases"`
}

// Pack is an ordered, duplicate free set of lower-case phrase literals
type Pack struct {
	Version   int
	Name      string
	Increment float64

	phrases []string
}

// Phrases returns a copy of the phrases in pack order
func (p *Pack) Phrases() []string {
	return append([]string(nil), p.phrases...)
}

// Len returns the number of phrases
func (p *Pack) Len() int { return len(p.phrases) }

// Load parses and validates the embedded patterns.json
func Load() (*Pack, error) {
	return parse(source())
}

func parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := json.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("patterns: parse patterns.json: %w", err)
	}
	if rp.Version != 1 {
		return nil, fmt.Errorf("patterns: unsupported patterns.json version %d (want 1)", rp.Version)
	}
	if rp.Increment <= 0 {
		return nil, fmt.Errorf("patterns: increment must be > 0, got %v", rp.Increment)
	}
	if len(rp.Phrases) == 0 {
		return nil, fmt.Errorf("patterns: no phrases")
	}

	seen := make(map[string]struct{}, len(rp.Phrases))
	out := make([]string, 0, len(rp.Phrases))
	for i, ph := range rp.Phrases {
		if strings.TrimSpace(ph) == "" {
			return nil, fmt.Errorf("patterns: phrase %d is blank", i)
		}
		if lower(ph) != ph {
			return nil, fmt.Errorf("patterns: phrase %q must be lower-case", ph)
		}
		if _, dup := seen[ph]; dup {
			return nil, fmt.Errorf("patterns: duplicate phrase %q", ph)
		}
		seen[ph] = struct{}{}
		out = append(out, ph)
	}

	name, _ := rp.Meta["name"].(string)
	return &Pack{
		Version:   rp.Version,
		Name:      name,
		Increment: rp.Increment,
		phrases:   out,
	}, nil
}

var (
	defOnce sync.Once
	defPack *Pack
)

// Default returns the process-wide pack. A corrupt embed is a build defect, so it panics
func Default() *Pack {
	defOnce.Do(func() {
		p, err := Load()
		if err != nil {
			panic(err)
		}
		defPack = p
	})
	return defPack
}
