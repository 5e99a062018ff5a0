package browse

import (
	"context"
	"strconv"
	"sync"

	"hugin/internal/platform/logger"
	"hugin/internal/services/api/businesses/domain"
)

// Fetcher is the request surface the orchestrator needs, satisfied by Client
type Fetcher interface {
	FetchPage(ctx context.Context, req Request) (domain.PageResult, error)
	FetchCount(ctx context.Context, req Request) (domain.CountResult, error)
}

// ViewState is the merged browse view. Items and Total update independently
// as their requests resolve; Total survives count failures so a meaningful
// number never blanks to zero
type ViewState struct {
	Items      []domain.Business
	NextCursor *string
	Total      int64
	HasTotal   bool
}

// Orchestrator coordinates the page and count requests behind one browse
// view. Every Apply supersedes the in-flight work: a response belonging to
// an earlier generation is discarded even when its network call completed,
// so a slow earlier request can never overwrite a newer view
type Orchestrator struct {
	fetch    Fetcher
	onUpdate func(ViewState)

	mu     sync.Mutex
	key    string
	gen    uint64
	cancel context.CancelFunc
	state  ViewState
	wg     sync.WaitGroup
}

// NewOrchestrator builds an orchestrator around a fetcher. onUpdate runs
// after every state merge and may be nil
func NewOrchestrator(f Fetcher, onUpdate func(ViewState)) *Orchestrator {
	if onUpdate == nil {
		onUpdate = func(ViewState) {}
	}
	return &Orchestrator{fetch: f, onUpdate: onUpdate}
}

// requestKey covers every filter field plus the page dimensions except the
// cursor, so paging through one filter state shares a key while any filter
// change gets a fresh one
func requestKey(r Request) string {
	return r.Filter.Signature() + "|" + r.SortBy + "|" + r.Order + "|" + strconv.Itoa(r.Limit)
}

// Apply supersedes the current view with req: the previous in-flight
// requests are cancelled, a page request always fires, and a count request
// fires only on a first page (no cursor) whose key differs from the current
// one or whose total is still unresolved, since the total is independent of
// pagination. The two are not sequenced; whichever resolves first merges
func (o *Orchestrator) Apply(ctx context.Context, req Request) {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.gen++
	gen := o.gen

	key := requestKey(req)
	needCount := req.Cursor == "" && (key != o.key || !o.state.HasTotal)
	o.key = key
	o.mu.Unlock()

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.runPage(reqCtx, gen, req)
	}()

	if needCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			o.runCount(reqCtx, gen, req)
		}()
	}
}

// Wait blocks until all in-flight requests have settled, for embedding in
// synchronous callers and tests
func (o *Orchestrator) Wait() { o.wg.Wait() }

// State returns a copy of the current merged view
func (o *Orchestrator) State() ViewState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) runPage(ctx context.Context, gen uint64, req Request) {
	page, err := o.fetch.FetchPage(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen {
		return // superseded, resolution ignored
	}
	if err != nil {
		logger.Named("browse").Warn().Err(err).Msg("page fetch failed, clearing results")
		o.state.Items = []domain.Business{}
		o.state.NextCursor = nil
	} else {
		o.state.Items = page.Items
		o.state.NextCursor = page.Cursor.Next
	}
	o.onUpdate(o.state)
}

func (o *Orchestrator) runCount(ctx context.Context, gen uint64, req Request) {
	count, err := o.fetch.FetchCount(ctx, req)

	o.mu.Lock()
	defer o.mu.Unlock()
	if gen != o.gen {
		return
	}
	if err != nil {
		// stale but visible beats blanking a meaningful number
		logger.Named("browse").Warn().Err(err).Msg("count fetch failed, keeping previous total")
	} else {
		o.state.Total = count.Total
		o.state.HasTotal = true
	}
	o.onUpdate(o.state)
}
