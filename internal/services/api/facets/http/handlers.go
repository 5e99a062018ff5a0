// Package http provides http transport for facet aggregates
package http

import (
	stdhttp "net/http"

	"hugin/internal/modkit/httpkit"
	svc "hugin/internal/services/api/facets/service"
)

// Register mounts the facet endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/revenue-range", h.revenueRange)
	httpkit.Get(r, "/profit-range", h.profitRange)
	httpkit.Get(r, "/industries", h.industries)
	httpkit.Get(r, "/event-types", h.eventTypes)
}

type handlers struct{ svc svc.Service }

// @Summary Global revenue and profit range
// @Tags Facets
// @Produce json
// @Success 200 {object} domain.RevenueRange "ok"
// @Router /facets/revenue-range [get]
func (h *handlers) revenueRange(r *stdhttp.Request) (any, error) {
	return h.svc.RevenueRange(r.Context())
}

// @Summary Global profit range
// @Tags Facets
// @Produce json
// @Success 200 {object} domain.ProfitRange "ok"
// @Router /facets/profit-range [get]
func (h *handlers) profitRange(r *stdhttp.Request) (any, error) {
	return h.svc.ProfitRange(r.Context())
}

// @Summary Distinct industry codes with descriptions
// @Tags Facets
// @Produce json
// @Success 200 {array} domain.Industry "ok"
// @Router /facets/industries [get]
func (h *handlers) industries(r *stdhttp.Request) (any, error) {
	return h.svc.Industries(r.Context())
}

// @Summary Distinct event types
// @Tags Facets
// @Produce json
// @Success 200 {object} domain.EventTypes "ok"
// @Router /facets/event-types [get]
func (h *handlers) eventTypes(r *stdhttp.Request) (any, error) {
	return h.svc.EventTypes(r.Context())
}
