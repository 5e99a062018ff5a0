// Package repo provides postgres access for business browsing
package repo

import (
	"context"
	"fmt"
	"strings"

	"hugin/internal/core/cursor"
	"hugin/internal/core/filter"
	"hugin/internal/modkit/repokit"
)

// Repo defines the repository contract for business pages and counts
type Repo interface {
	Page(ctx context.Context, q filter.Query, sortBy, order string, cur *cursor.Cursor, limit int) ([]RowBusiness, error)
	Count(ctx context.Context, q filter.Query) (int64, error)
	ExplainPage(ctx context.Context, q filter.Query, sortBy, order string, cur *cursor.Cursor, limit int) (string, error)
	ExplainCount(ctx context.Context, q filter.Query) (string, error)
}

// RowBusiness represents a business row joined to its latest financial year
type RowBusiness struct {
	ID            int64
	OrgNumber     string
	Name          string
	IndustryCode  string
	IndustryText  string
	OrgFormCode   string
	City          string
	Revenue       *int64
	Employees     *int64
	VatRegistered bool
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

const selectHead = `
select b.id, b.org_number, b.name,
coalesce(b.industry_code1, ''), coalesce(b.industry_text1, ''),
coalesce(b.org_form_code, ''), coalesce(b.city, ''),
f.revenue, f.employees, coalesce(b.vat_registered, false)
from businesses b
left join lateral (
select lf.revenue, lf.employees from financials lf
where lf.org_number = b.org_number
order by lf.fiscal_year desc nulls last limit 1
) f on true
`

// metricColumn maps a sort key to its lateral-joined column; name has no
// metric and paginates externally by offset
func metricColumn(sortBy string) string {
	switch sortBy {
	case "employees":
		return "f.employees"
	case "revenue":
		return "f.revenue"
	}
	return ""
}

// pageSQL builds the full page statement. The filter conjuncts compile
// first, the keyset continuation continues their numbering, and the limit
// takes the final placeholder, so the arg array always lines up
func pageSQL(q filter.Query, sortBy, order string, cur *cursor.Cursor, limit int) (string, []any) {
	b := filter.NewBuilder(1)
	filter.Compile(q, b)

	metric := metricColumn(sortBy)
	if metric != "" && cur != nil {
		keysetConjunct(b, metric, order, *cur)
	}

	sql := selectHead +
		"where " + b.Where() +
		"\norder by " + orderBy(metric, order) +
		fmt.Sprintf("\nlimit $%d", b.Next())
	return sql, append(b.Args(), limit)
}

// keysetConjunct appends the continuation predicate for a decoded cursor.
// Rows with a NULL metric order strictly after the non-null partition, so a
// non-null cursor still admits them; once the cursor itself carries a NULL
// metric, pagination degenerates to id order within that partition
func keysetConjunct(b *filter.Builder, metric, order string, cur cursor.Cursor) {
	cmp := "<"
	if order == "asc" {
		cmp = ">"
	}
	if cur.Metric == nil {
		b.Add(metric+" IS NULL AND b.id "+cmp+" ?", cur.ID)
		return
	}
	b.Add(
		"("+metric+" "+cmp+" ? OR ("+metric+" = ? AND b.id "+cmp+" ?) OR "+metric+" IS NULL)",
		*cur.Metric, *cur.Metric, cur.ID,
	)
}

func orderBy(metric, order string) string {
	dir := "desc"
	if order == "asc" {
		dir = "asc"
	}
	if metric == "" {
		return "b.name " + dir + ", b.id " + dir
	}
	return metric + " " + dir + " nulls last, b.id " + dir
}

func (r *queries) Page(
	ctx context.Context,
	q filter.Query,
	sortBy, order string,
	cur *cursor.Cursor,
	limit int,
) ([]RowBusiness, error) {
	sql, args := pageSQL(q, sortBy, order, cur, limit)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RowBusiness
	for rows.Next() {
		var rr RowBusiness
		if err := rows.Scan(
			&rr.ID,
			&rr.OrgNumber,
			&rr.Name,
			&rr.IndustryCode,
			&rr.IndustryText,
			&rr.OrgFormCode,
			&rr.City,
			&rr.Revenue,
			&rr.Employees,
			&rr.VatRegistered,
		); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

func (r *queries) Count(ctx context.Context, q filter.Query) (int64, error) {
	const sql = `select business_filter_count($1, $2, $3, $4, $5, $6, $7, $8)`
	var total int64
	if err := r.q.QueryRow(ctx, sql, q.CountArgs()...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *queries) ExplainPage(
	ctx context.Context,
	q filter.Query,
	sortBy, order string,
	cur *cursor.Cursor,
	limit int,
) (string, error) {
	sql, args := pageSQL(q, sortBy, order, cur, limit)
	return r.explain(ctx, sql, args...)
}

func (r *queries) ExplainCount(ctx context.Context, q filter.Query) (string, error) {
	return r.explain(ctx, `select business_filter_count($1, $2, $3, $4, $5, $6, $7, $8)`, q.CountArgs()...)
}

func (r *queries) explain(ctx context.Context, sql string, args ...any) (string, error) {
	rows, err := r.q.Query(ctx, "explain "+sql, args...)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), rows.Err()
}
