// Package repo provides postgres access for facet aggregates
package repo

import (
	"context"

	"hugin/internal/modkit/repokit"
	"hugin/internal/services/api/facets/domain"
)

// Repo defines the repository contract for facet aggregates
type Repo interface {
	RevenueRange(ctx context.Context) (domain.RevenueRange, error)
	ProfitRange(ctx context.Context) (domain.ProfitRange, error)
	Industries(ctx context.Context) ([]domain.Industry, error)
	EventTypes(ctx context.Context) ([]string, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) RevenueRange(ctx context.Context) (domain.RevenueRange, error) {
	const sql = `select min(revenue), max(revenue), min(profit), max(profit) from financials`
	var out domain.RevenueRange
	err := r.q.QueryRow(ctx, sql).Scan(&out.MinRevenue, &out.MaxRevenue, &out.MinProfit, &out.MaxProfit)
	return out, err
}

func (r *queries) ProfitRange(ctx context.Context) (domain.ProfitRange, error) {
	const sql = `select min(profit), max(profit) from financials`
	var out domain.ProfitRange
	err := r.q.QueryRow(ctx, sql).Scan(&out.MinProfit, &out.MaxProfit)
	return out, err
}

func (r *queries) Industries(ctx context.Context) ([]domain.Industry, error) {
	const sql = `
select distinct industry_code1, coalesce(industry_text1, '')
from businesses
where industry_code1 is not null
order by industry_code1
`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Industry
	for rows.Next() {
		var ind domain.Industry
		if err := rows.Scan(&ind.Code, &ind.Text); err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	return out, rows.Err()
}

func (r *queries) EventTypes(ctx context.Context) ([]string, error) {
	const sql = `select distinct event_type from events order by event_type`
	rows, err := r.q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
