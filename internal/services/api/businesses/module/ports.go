package module

import (
	"context"

	"hugin/internal/core/filter"
	businessesdom "hugin/internal/services/api/businesses/domain"
	businessessvc "hugin/internal/services/api/businesses/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptBusinessesPort adapts the businesses service to the domain port interface
type adaptBusinessesPort struct{ svc businessessvc.Service }

// Page implements the domain ServicePort interface
func (a adaptBusinessesPort) Page(ctx context.Context, in businessesdom.PageInput) (businessesdom.PageResult, error) {
	return a.svc.Page(ctx, in)
}

// Count implements the domain ServicePort interface
func (a adaptBusinessesPort) Count(ctx context.Context, q filter.Query) (businessesdom.CountResult, error) {
	return a.svc.Count(ctx, q)
}

// ExplainPage implements the domain ServicePort interface
func (a adaptBusinessesPort) ExplainPage(
	ctx context.Context,
	in businessesdom.PageInput,
) (businessesdom.ExplainResult, error) {
	return a.svc.ExplainPage(ctx, in)
}

// ExplainCount implements the domain ServicePort interface
func (a adaptBusinessesPort) ExplainCount(
	ctx context.Context,
	q filter.Query,
) (businessesdom.ExplainResult, error) {
	return a.svc.ExplainCount(ctx, q)
}
