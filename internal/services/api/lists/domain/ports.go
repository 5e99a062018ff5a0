package domain

import "context"

// Emit pushes one named event to the client; a non nil return means the
// client is gone and materialization should stop
type Emit func(event string, payload any) error

// ServicePort defines the service contract for list materialization
type ServicePort interface {
	Materialize(ctx context.Context, ownerID string, in SaveStreamInput, emit Emit) error
}
