// Package service contains the bulk list materialization workflow
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hugin/internal/core/filter"
	"hugin/internal/modkit/repokit"
	"hugin/internal/platform/logger"
	"hugin/internal/services/api/lists/domain"
	"hugin/internal/services/api/lists/repo"
)

// Service defines the service contract for list materialization
type Service interface{ domain.ServicePort }

const (
	// batchSize bounds one membership insert statement
	batchSize = 500

	// defaultBatchDelay paces inserts so the materializer does not starve
	// concurrent page requests of pool connections
	defaultBatchDelay = 50 * time.Millisecond
)

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	batchDelay time.Duration
	sleep      func(time.Duration) // seam for tests
	newID      func() string
}

// Option mutates a Svc during New
type Option func(*Svc)

// WithBatchDelay overrides the inter batch pacing delay
func WithBatchDelay(d time.Duration) Option {
	return func(s *Svc) { s.batchDelay = d }
}

// WithSleep overrides the sleep function, for tests
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Svc) { s.sleep = fn }
}

// WithIDSource overrides list id generation, for tests
func WithIDSource(fn func() string) Option {
	return func(s *Svc) { s.newID = fn }
}

// New creates a new lists service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("lists.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("lists.Service requires a non nil Repo binder")
	}
	s := &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		batchDelay: defaultBatchDelay,
		sleep:      time.Sleep,
		newID:      uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Materialize creates the list row, resolves the full candidate set for the
// saved filter, then inserts memberships in fixed size batches, emitting a
// progress event after each one. A resolution failure aborts before any row
// is inserted; a batch failure aborts mid stream and leaves the list
// partially populated, which the terminal error event makes visible.
// Returns nil once a terminal event has been emitted; a non nil error means
// the client went away mid stream
func (s *Svc) Materialize(ctx context.Context, ownerID string, in domain.SaveStreamInput, emit domain.Emit) error {
	log := logger.Named("lists")
	q := filter.ParseQueryString(in.FQ)

	id := s.newID()
	if err := s.Repo.CreateList(ctx, id, ownerID, in.Name, in.FQ); err != nil {
		log.Error().Err(err).Str("name", in.Name).Msg("list create failed")
		return emit(domain.EventError, domain.Error{Message: "could not create list"})
	}
	if err := emit(domain.EventCreated, domain.Created{ID: id}); err != nil {
		return err
	}

	orgs, err := s.Repo.Candidates(ctx, q)
	if err != nil {
		log.Error().Err(err).Str("list_id", id).Msg("candidate resolution failed")
		return emit(domain.EventError, domain.Error{Message: "could not resolve candidates"})
	}

	total := len(orgs)
	if err := emit(domain.EventProgress, domain.Progress{Total: total, Inserted: 0}); err != nil {
		return err
	}

	inserted := 0
	for start := 0; start < total; start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + batchSize
		if end > total {
			end = total
		}

		affected, err := s.Repo.InsertItems(ctx, id, orgs[start:end])
		if err != nil {
			log.Error().Err(err).Str("list_id", id).Int("inserted", inserted).Msg("batch insert failed")
			return emit(domain.EventError, domain.Error{Message: "insert failed"})
		}
		inserted += int(affected)

		if err := emit(domain.EventProgress, domain.Progress{Total: total, Inserted: inserted}); err != nil {
			return err
		}
		if end < total {
			s.sleep(s.batchDelay)
		}
	}

	return emit(domain.EventDone, domain.Done{Inserted: inserted, Total: total, ID: id})
}
