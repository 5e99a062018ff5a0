// Package http provides http transport for business browsing
package http

import (
	stdhttp "net/http"

	"hugin/internal/core/filter"
	"hugin/internal/modkit/httpkit"
	"hugin/internal/platform/net/http/bind"
	"hugin/internal/services/api/businesses/domain"
	svc "hugin/internal/services/api/businesses/service"
)

// pageParams are the non-filter knobs of the page endpoint
type pageParams struct {
	SortBy  string `query:"sortBy" json:"sortBy" validate:"omitempty,oneof=revenue employees name"`
	Order   string `query:"order" json:"order" validate:"omitempty,oneof=asc desc"`
	Limit   int    `query:"limit" json:"limit"`
	Cursor  string `query:"cursor" json:"cursor"`
	Explain bool   `query:"explain" json:"explain"`
}

// Register mounts the business browsing endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/", h.page)
	httpkit.Get(r, "/count", h.count)
}

type handlers struct{ svc svc.Service }

// @Summary One page of filtered businesses with keyset continuation
// @Tags Businesses
// @Produce json
// @Param sortBy query string false "revenue, employees or name"
// @Param order query string false "asc or desc"
// @Param limit query int false "page size, clamped to [1,200]"
// @Param cursor query string false "opaque continuation token"
// @Param explain query bool false "return the query plan instead of data"
// @Success 200 {object} domain.PageResult "ok"
// @Router /businesses [get]
func (h *handlers) page(r *stdhttp.Request) (any, error) {
	params, err := bind.ParseQuery[pageParams](r)
	if err != nil {
		return nil, err
	}
	in := domain.PageInput{
		Filter:  filter.ParseValues(r.URL.Query()),
		SortBy:  params.SortBy,
		Order:   params.Order,
		Limit:   params.Limit,
		Cursor:  params.Cursor,
		Explain: params.Explain,
	}
	if in.Explain {
		return h.svc.ExplainPage(r.Context(), in)
	}
	return h.svc.Page(r.Context(), in)
}

// @Summary Total count for a filter signature
// @Tags Businesses
// @Produce json
// @Param explain query bool false "return the query plan instead of data"
// @Success 200 {object} domain.CountResult "ok"
// @Router /businesses/count [get]
func (h *handlers) count(r *stdhttp.Request) (any, error) {
	params, err := bind.ParseQuery[pageParams](r)
	if err != nil {
		return nil, err
	}
	q := filter.ParseValues(r.URL.Query())
	if params.Explain {
		return h.svc.ExplainCount(r.Context(), q)
	}
	return h.svc.Count(r.Context(), q)
}
