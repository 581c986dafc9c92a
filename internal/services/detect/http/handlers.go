// Package http provides http transport for detect
package http

import (
	stdhttp "net/http"

	"authorcheck/internal/modkit/httpkit"
	"authorcheck/internal/services/detect/domain"
)

// Register mounts detect endpoints on the given router
func Register(r httpkit.Router, s domain.ServicePort, maxBody int64) {
	h := &handlers{svc: s}

	// body decoded leniently, verdict written bare
	httpkit.PostLenient[domain.DetectInput](r, "/", maxBody, h.detect)
}

type handlers struct{ svc domain.ServicePort }

// @Summary Classify text as human-written or AI-generated
// @Tags Detect
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput false "Text"
// @Success 200 {object} domain.DetectOutput "verdict"
// @Failure 503 {object} httpkit.Envelope "classifier unavailable"
// @Failure 500 {object} httpkit.Envelope "classification failed"
// @Router /detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}
