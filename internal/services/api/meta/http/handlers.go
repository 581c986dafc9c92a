// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"authorcheck/internal/adapters/paraphraser"
	"authorcheck/internal/core/patterns"
	"authorcheck/internal/core/verdict"
	"authorcheck/internal/core/version"
	"authorcheck/internal/modkit/httpkit"
)

// Backend is satisfied by the classifier and paraphraser adapters
type Backend interface {
	Available() bool
	Err() error
	Name() string
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Scanner     *patterns.Scanner
	Classifier  Backend
	Paraphraser Backend
	// MaxChars is the classifier input truncation length
	MaxChars int
	Decoding paraphraser.DecodingConfig
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/engine", h.engine)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"authorcheck"`
	Started string `json:"started"  example:"2026-10-14T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-14T13:05:00Z"`
}

// ReadyCheck describes a single backend check
type ReadyCheck struct {
	Name    string `json:"name"    example:"classifier"`
	Backend string `json:"backend,omitempty" example:"openai-community/roberta-base-openai-detector"`
	Status  string `json:"status"  example:"ok"` // ok fail
	Error   string `json:"error,omitempty" example:"classifier url not configured"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-14T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"authorcheck"`
	Started string `json:"started" example:"2026-10-14T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// PackInfo describes the heuristic pattern pack
type PackInfo struct {
	Name      string   `json:"name"      example:"ai-isms"`
	Version   int      `json:"version"   example:"1"`
	Increment float64  `json:"increment" example:"0.15"`
	Phrases   []string `json:"phrases"`
}

// EngineResponse reports the decision parameters in force
type EngineResponse struct {
	Threshold     float64                    `json:"threshold"      example:"0.1"`
	MinChars      int                        `json:"min_chars"      example:"60"`
	AIFloor       float64                    `json:"ai_floor"       example:"60"`
	AISpan        float64                    `json:"ai_span"        example:"40"`
	AICap         float64                    `json:"ai_cap"         example:"99.9"`
	KeywordsShown int                        `json:"keywords_shown" example:"2"`
	MaxChars      int                        `json:"classifier_max_chars" example:"512"`
	Classifier    string                     `json:"classifier"     example:"openai-community/roberta-base-openai-detector"`
	Paraphraser   string                     `json:"paraphraser"    example:"humarin/chatgpt_paraphraser_on_T5_base"`
	Decoding      paraphraser.DecodingConfig `json:"decoding"`
	Patterns      PackInfo                   `json:"patterns"`
}

// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// @Summary Readiness of the model backends
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	checks := []ReadyCheck{
		check("classifier", h.deps.Classifier),
		check("paraphraser", h.deps.Paraphraser),
	}
	return ReadyResponse{
		Status: overall(checks),
		Checks: checks,
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

func check(name string, b Backend) ReadyCheck {
	if b == nil || !b.Available() {
		c := ReadyCheck{Name: name, Status: "fail"}
		if b != nil && b.Err() != nil {
			c.Error = b.Err().Error()
		}
		return c
	}
	return ReadyCheck{Name: name, Backend: b.Name(), Status: "ok"}
}

// overall is ok when every check passes, fail when none do, degraded otherwise
func overall(checks []ReadyCheck) string {
	ok := 0
	for _, c := range checks {
		if c.Status == "ok" {
			ok++
		}
	}
	switch ok {
	case len(checks):
		return "ok"
	case 0:
		return "fail"
	default:
		return "degraded"
	}
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

// @Summary Decision parameters, pattern pack and backend names
// @Tags Meta
// @Produce json
// @Success 200 {object} EngineResponse "ok"
// @Router /meta/engine [get]
func (h *handlers) engine(_ *http.Request) (any, error) {
	out := EngineResponse{
		Threshold:     verdict.Threshold,
		MinChars:      verdict.MinChars,
		AIFloor:       verdict.AIFloor,
		AISpan:        verdict.AISpan,
		AICap:         verdict.AICap,
		KeywordsShown: verdict.KeywordsShown,
		MaxChars:      h.deps.MaxChars,
		Decoding:      h.deps.Decoding,
	}
	if h.deps.Classifier != nil {
		out.Classifier = h.deps.Classifier.Name()
	}
	if h.deps.Paraphraser != nil {
		out.Paraphraser = h.deps.Paraphraser.Name()
	}
	if s := h.deps.Scanner; s != nil {
		p := s.Pack()
		out.Patterns = PackInfo{Name: p.Name, Version: p.Version, Increment: p.Increment, Phrases: p.Phrases()}
	}
	return out, nil
}
