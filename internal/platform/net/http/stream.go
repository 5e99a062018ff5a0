package http

import (
	"encoding/json"
	"fmt"
	stdhttp "net/http"
)

// EventStream writes named server-sent events over a long lived response.
// The channel is unidirectional server to client with no acknowledgment;
// every event is flushed immediately so progress is visible under proxies
// that would otherwise buffer
type EventStream struct {
	w       stdhttp.ResponseWriter
	flusher stdhttp.Flusher
}

// NewEventStream prepares w for SSE and writes the stream headers.
// Returns an error when the writer cannot flush, which means the transport
// cannot carry a stream at all
func NewEventStream(w stdhttp.ResponseWriter) (*EventStream, error) {
	flusher, ok := w.(stdhttp.Flusher)
	if !ok {
		return nil, fmt.Errorf("http: response writer does not support flushing")
	}
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(stdhttp.StatusOK)
	flusher.Flush()
	return &EventStream{w: w, flusher: flusher}, nil
}

// Send emits one named event with a JSON payload and flushes it.
// A write error means the client went away; callers stop streaming
func (s *EventStream) Send(event string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("http: marshal %s event: %w", event, err)
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, raw); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Comment emits an SSE comment line, useful as a keep-alive
func (s *EventStream) Comment(text string) error {
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
