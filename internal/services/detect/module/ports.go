package module

import (
	"context"

	"authorcheck/internal/services/detect/domain"
	detectsvc "authorcheck/internal/services/detect/service"
)

// Ports is the detect module's port set
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDetectPort struct{ svc detectsvc.Service }

// Detect returns the hybrid verdict for one text
func (a adaptDetectPort) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	return a.svc.Detect(ctx, in)
}
