// Package domain holds DTOs for the list materializer contracts
package domain

// Stream event names, in emission order
const (
	EventCreated  = "created"
	EventProgress = "progress"
	EventDone     = "done"
	EventError    = "error"
)

// SaveStreamInput is the input for materializing a filtered list
type SaveStreamInput struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
	FQ   string `json:"fq"`
}

// Created announces the freshly created list row
type Created struct {
	ID string `json:"id"`
}

// Progress reports insertion progress after each batch
type Progress struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
}

// Done closes a successful materialization
type Done struct {
	Inserted int    `json:"inserted"`
	Total    int    `json:"total"`
	ID       string `json:"id"`
}

// Error closes an aborted materialization
type Error struct {
	Message string `json:"message"`
}
