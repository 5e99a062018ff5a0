package module

import (
	"context"

	facetsdom "hugin/internal/services/api/facets/domain"
	facetssvc "hugin/internal/services/api/facets/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFacetsPort adapts the facets service to the domain port interface
type adaptFacetsPort struct{ svc facetssvc.Service }

// RevenueRange implements the domain ServicePort interface
func (a adaptFacetsPort) RevenueRange(ctx context.Context) (facetsdom.RevenueRange, error) {
	return a.svc.RevenueRange(ctx)
}

// ProfitRange implements the domain ServicePort interface
func (a adaptFacetsPort) ProfitRange(ctx context.Context) (facetsdom.ProfitRange, error) {
	return a.svc.ProfitRange(ctx)
}

// Industries implements the domain ServicePort interface
func (a adaptFacetsPort) Industries(ctx context.Context) ([]facetsdom.Industry, error) {
	return a.svc.Industries(ctx)
}

// EventTypes implements the domain ServicePort interface
func (a adaptFacetsPort) EventTypes(ctx context.Context) (facetsdom.EventTypes, error) {
	return a.svc.EventTypes(ctx)
}
