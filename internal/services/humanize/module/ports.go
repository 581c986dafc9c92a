package module

import (
	"context"

	"authorcheck/internal/services/humanize/domain"
	humanizesvc "authorcheck/internal/services/humanize/service"
)

// Ports is the humanize module's port set
type Ports struct {
	Service domain.ServicePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptHumanizePort struct{ svc humanizesvc.Service }

// Humanize paraphrases one text
func (a adaptHumanizePort) Humanize(ctx context.Context, in domain.HumanizeInput) (domain.HumanizeOutput, error) {
	return a.svc.Humanize(ctx, in)
}
