// Package service contains the cached facet aggregate workflows
package service

import (
	"context"
	"time"

	"hugin/internal/modkit/repokit"
	"hugin/internal/platform/cache"
	"hugin/internal/services/api/facets/domain"
	"hugin/internal/services/api/facets/repo"
)

// Service defines the service contract for facet aggregates
type Service interface{ domain.ServicePort }

// Per facet TTLs. Aggregates are recomputable, so staleness bounds are a
// cost judgment, not a correctness one
const (
	revenueRangeTTL = 15 * time.Minute
	profitRangeTTL  = 5 * time.Minute
	industriesTTL   = 10 * time.Minute
	eventTypesTTL   = 5 * time.Minute
)

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cache  *cache.Cache
}

// New creates a new facets service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], c *cache.Cache) *Svc {
	if db == nil {
		panic("facets.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("facets.Service requires a non nil Repo binder")
	}
	if c == nil {
		panic("facets.Service requires a non nil cache")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cache: c}
}

// RevenueRange serves the cached global revenue and profit span
func (s *Svc) RevenueRange(ctx context.Context) (domain.RevenueRange, error) {
	return cache.Remember(s.cache, "facets:revenue-range", revenueRangeTTL, func() (domain.RevenueRange, error) {
		return s.Repo.RevenueRange(ctx)
	})
}

// ProfitRange serves the cached global profit span
func (s *Svc) ProfitRange(ctx context.Context) (domain.ProfitRange, error) {
	return cache.Remember(s.cache, "facets:profit-range", profitRangeTTL, func() (domain.ProfitRange, error) {
		return s.Repo.ProfitRange(ctx)
	})
}

// Industries serves the cached distinct industry list
func (s *Svc) Industries(ctx context.Context) ([]domain.Industry, error) {
	return cache.Remember(s.cache, "facets:industries", industriesTTL, func() ([]domain.Industry, error) {
		return s.Repo.Industries(ctx)
	})
}

// EventTypes serves the cached distinct event type list
func (s *Svc) EventTypes(ctx context.Context) (domain.EventTypes, error) {
	types, err := cache.Remember(s.cache, "facets:event-types", eventTypesTTL, func() ([]string, error) {
		return s.Repo.EventTypes(ctx)
	})
	if err != nil {
		return domain.EventTypes{}, err
	}
	return domain.EventTypes{Types: types}, nil
}
