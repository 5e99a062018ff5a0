// Package http provides the streaming transport for list materialization
package http

import (
	stdhttp "net/http"

	"hugin/internal/modkit/httpkit"
	phttp "hugin/internal/platform/net/http"
	"hugin/internal/platform/net/http/bind"
	"hugin/internal/services/api/lists/domain"
	svc "hugin/internal/services/api/lists/service"
)

// Register mounts the list materialization endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/save/stream", h.saveStream)
}

type handlers struct{ svc svc.Service }

// queryInput mirrors domain.SaveStreamInput for query string binding
type queryInput struct {
	Name string `query:"name" json:"name" validate:"required,min=1,max=200"`
	FQ   string `query:"fq" json:"fq"`
}

// @Summary Materialize a filtered result set into a named list
// @Tags Lists
// @Produce text/event-stream
// @Param name query string true "list name"
// @Param fq query string false "url encoded filter query"
// @Success 200 {string} string "event stream: created, progress, done, error"
// @Router /lists/save/stream [get]
func (h *handlers) saveStream(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseQuery[queryInput](r)
	if err != nil {
		// validation fails before the stream opens, so a plain envelope works
		phttp.Handle(func(*stdhttp.Request) phttp.Response { return phttp.Error(err) })(w, r)
		return
	}

	owner := "anonymous"
	if uid, err := httpkit.User(r); err == nil {
		owner = uid
	}

	stream, err := phttp.NewEventStream(w)
	if err != nil {
		phttp.Handle(func(*stdhttp.Request) phttp.Response { return phttp.Error(err) })(w, r)
		return
	}

	// terminal events are emitted inside; an error here means the client
	// disconnected and there is nobody left to tell
	_ = h.svc.Materialize(r.Context(), owner, domain.SaveStreamInput{Name: in.Name, FQ: in.FQ}, stream.Send)
}
