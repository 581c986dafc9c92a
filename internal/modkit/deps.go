// Package modkit provides module wiring and core deps
package modkit

import (
	"authorcheck/internal/adapters/classifier"
	"authorcheck/internal/adapters/paraphraser"
	"authorcheck/internal/core/patterns"
	"authorcheck/internal/platform/config"
	"authorcheck/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Scanner is shared; nil means the default pack
	Scanner     *patterns.Scanner
	Classifier  *classifier.Adapter
	Paraphraser *paraphraser.Adapter
}

// WithDefaults fills absent backends with permanently unavailable adapters and the default scanner,
// so a module never dereferences nil
func (d Deps) WithDefaults() Deps {
	if d.Scanner == nil {
		d.Scanner = patterns.NewScanner(patterns.Default())
	}
	if d.Classifier == nil {
		d.Classifier = classifier.Unavailable(nil)
	}
	if d.Paraphraser == nil {
		d.Paraphraser = paraphraser.Unavailable(nil)
	}
	return d
}
