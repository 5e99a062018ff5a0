package domain

import "context"

// ServicePort defines the service contract for facet aggregates
type ServicePort interface {
	RevenueRange(ctx context.Context) (RevenueRange, error)
	ProfitRange(ctx context.Context) (ProfitRange, error)
	Industries(ctx context.Context) ([]Industry, error)
	EventTypes(ctx context.Context) (EventTypes, error)
}
