// Package service contains the instant list workflows for business browsing
package service

import (
	"context"
	"time"

	"hugin/internal/core/cursor"
	"hugin/internal/core/filter"
	"hugin/internal/modkit/repokit"
	"hugin/internal/platform/cache"
	"hugin/internal/platform/logger"
	"hugin/internal/services/api/businesses/domain"
	"hugin/internal/services/api/businesses/repo"
)

// Service defines the service contract for business browsing
type Service interface{ domain.ServicePort }

const (
	defaultLimit = 100
	maxLimit     = 200

	// countTTL bounds how stale a cached total may get
	countTTL = time.Minute

	// failureTTL is the short negative-cache window after a failed page
	// query, so repeated polling does not hammer a failing store
	failureTTL = 15 * time.Second
)

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cache  *cache.Cache
}

// New creates a new businesses service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], c *cache.Cache) *Svc {
	if db == nil {
		panic("businesses.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("businesses.Service requires a non nil Repo binder")
	}
	if c == nil {
		panic("businesses.Service requires a non nil cache")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, cache: c}
}

// Page serves one page of filtered results. A store failure degrades to an
// empty page with HTTP success, never an error, and the empty result is
// cached briefly under the exact request key
func (s *Svc) Page(ctx context.Context, in domain.PageInput) (domain.PageResult, error) {
	start := time.Now()
	in = normalize(in)

	key := pageKey(in)
	if neg, ok := cache.GetAs[domain.PageResult](s.cache, key); ok {
		neg.TookMs = time.Since(start).Milliseconds()
		return neg, nil
	}

	cur := decodeCursor(in)
	rows, err := s.Repo.Page(ctx, in.Filter, in.SortBy, in.Order, cur, in.Limit)
	if err != nil {
		logger.Named("businesses").Warn().Err(err).
			Str("sort", in.SortBy).
			Msg("page query failed, serving empty result")
		empty := domain.PageResult{Items: []domain.Business{}}
		s.cache.Set(key, empty, failureTTL)
		empty.TookMs = time.Since(start).Milliseconds()
		return empty, nil
	}

	items := make([]domain.Business, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.Business{
			ID:            r.ID,
			OrgNumber:     r.OrgNumber,
			Name:          r.Name,
			IndustryCode:  r.IndustryCode,
			IndustryText:  r.IndustryText,
			OrgFormCode:   r.OrgFormCode,
			City:          r.City,
			Revenue:       r.Revenue,
			Employees:     r.Employees,
			VatRegistered: r.VatRegistered,
		})
	}

	return domain.PageResult{
		Items:  items,
		Cursor: domain.CursorOut{Next: nextCursor(in, items)},
		TookMs: time.Since(start).Milliseconds(),
	}, nil
}

// Count serves the cached total for a filter signature. Counts come from a
// precomputed aggregation function, are independent of sort and cursor, and
// may lag behind concurrent mutation. A store failure propagates so the
// caller can keep showing its previous total instead of a zero
func (s *Svc) Count(ctx context.Context, q filter.Query) (domain.CountResult, error) {
	start := time.Now()
	total, err := cache.Remember(s.cache, countKey(q), countTTL, func() (int64, error) {
		return s.Repo.Count(ctx, q)
	})
	if err != nil {
		return domain.CountResult{}, err
	}
	return domain.CountResult{Total: total, TookMs: time.Since(start).Milliseconds()}, nil
}

// ExplainPage returns the plan for the exact statement Page would run
func (s *Svc) ExplainPage(ctx context.Context, in domain.PageInput) (domain.ExplainResult, error) {
	in = normalize(in)
	plan, err := s.Repo.ExplainPage(ctx, in.Filter, in.SortBy, in.Order, decodeCursor(in), in.Limit)
	if err != nil {
		return domain.ExplainResult{}, err
	}
	return domain.ExplainResult{Plan: plan}, nil
}

// ExplainCount returns the plan for the count function call
func (s *Svc) ExplainCount(ctx context.Context, q filter.Query) (domain.ExplainResult, error) {
	plan, err := s.Repo.ExplainCount(ctx, q)
	if err != nil {
		return domain.ExplainResult{}, err
	}
	return domain.ExplainResult{Plan: plan}, nil
}

// normalize clamps the limit and defaults the sort dimensions
func normalize(in domain.PageInput) domain.PageInput {
	if in.SortBy == "" {
		in.SortBy = domain.SortRevenue
	}
	if in.Order == "" {
		in.Order = "desc"
	}
	switch {
	case in.Limit <= 0:
		in.Limit = defaultLimit
	case in.Limit > maxLimit:
		in.Limit = maxLimit
	}
	return in
}

// decodeCursor resolves the continuation point; malformed tokens and
// name-sorted requests read as first page
func decodeCursor(in domain.PageInput) *cursor.Cursor {
	if in.SortBy == domain.SortName {
		return nil
	}
	c, ok := cursor.Decode(in.Cursor)
	if !ok {
		return nil
	}
	return &c
}

// nextCursor derives the continuation token from the last row of a full
// page. A short page means the set is exhausted; name sort never continues
// by cursor because name collisions make keyset continuation ambiguous
func nextCursor(in domain.PageInput, items []domain.Business) *string {
	if in.SortBy == domain.SortName || len(items) < in.Limit || len(items) == 0 {
		return nil
	}
	last := items[len(items)-1]
	metric := last.Revenue
	if in.SortBy == domain.SortEmployees {
		metric = last.Employees
	}
	token := cursor.Encode(metric, last.ID)
	return &token
}

func pageKey(in domain.PageInput) string {
	return cache.Key("businesses:page", map[string]any{
		"sig":    in.Filter.Signature(),
		"sort":   in.SortBy,
		"order":  in.Order,
		"limit":  in.Limit,
		"cursor": in.Cursor,
	})
}

func countKey(q filter.Query) string {
	return "businesses:count:" + q.Signature()
}
