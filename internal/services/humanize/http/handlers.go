// Package http provides http transport for humanize
package http

import (
	stdhttp "net/http"

	"authorcheck/internal/modkit/httpkit"
	"authorcheck/internal/services/humanize/domain"
)

// Register mounts humanize endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, maxBody int64) {
	h := &handlers{svc: s}
	httpkit.PostLenient[domain.HumanizeInput](r, "/", maxBody, h.humanize)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Paraphrase text
// @Tags Humanize
// @Accept json
// @Produce json
// @Param payload body domain.HumanizeInput false "Text"
// @Success 200 {object} domain.HumanizeOutput "paraphrase"
// @Failure 503 {object} httpkit.Envelope "paraphraser unavailable"
// @Failure 500 {object} httpkit.Envelope "generation failed"
// @Router /humanize [post]
func (h *handlers) humanize(r *stdhttp.Request, in domain.HumanizeInput) (any, error) {
	return h.svc.Humanize(r.Context(), in)
}
