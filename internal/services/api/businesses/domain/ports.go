package domain

import (
	"context"

	"hugin/internal/core/filter"
)

// ServicePort defines the service contract for business browsing
type ServicePort interface {
	Page(ctx context.Context, in PageInput) (PageResult, error)
	Count(ctx context.Context, q filter.Query) (CountResult, error)
	ExplainPage(ctx context.Context, in PageInput) (ExplainResult, error)
	ExplainCount(ctx context.Context, q filter.Query) (ExplainResult, error)
}
