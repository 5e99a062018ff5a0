// Package repo provides postgres access for saved lists
package repo

import (
	"context"

	"hugin/internal/core/filter"
	"hugin/internal/modkit/repokit"
)

// Repo defines the repository contract for saved lists
type Repo interface {
	CreateList(ctx context.Context, id, ownerID, name, filterQuery string) error
	Candidates(ctx context.Context, q filter.Query) ([]string, error)
	InsertItems(ctx context.Context, listID string, orgNumbers []string) (int64, error)
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

func (r *queries) CreateList(ctx context.Context, id, ownerID, name, filterQuery string) error {
	const sql = `
insert into lists (id, owner_id, name, filter_query, created_at)
values ($1, $2, $3, $4, now())
`
	_, err := r.q.Exec(ctx, sql, id, ownerID, name, filterQuery)
	return err
}

// candidatesSQL resolves the full org number set for a saved filter, no
// limit. The industry value matches as code or text across all three slots
func candidatesSQL(q filter.Query) (string, []any) {
	b := filter.NewBuilder(1)
	filter.CompileCandidates(q, b)
	return "select b.org_number from businesses b\nwhere " + b.Where(), b.Args()
}

func (r *queries) Candidates(ctx context.Context, q filter.Query) ([]string, error) {
	sql, args := candidatesSQL(q)
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var org string
		if err := rows.Scan(&org); err != nil {
			return nil, err
		}
		out = append(out, org)
	}
	return out, rows.Err()
}

func (r *queries) InsertItems(ctx context.Context, listID string, orgNumbers []string) (int64, error) {
	const sql = `
insert into list_items (list_id, org_number)
select $1, unnest($2::text[])
on conflict do nothing
`
	tag, err := r.q.Exec(ctx, sql, listID, orgNumbers)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
