package module

import (
	"context"

	listsdom "hugin/internal/services/api/lists/domain"
	listssvc "hugin/internal/services/api/lists/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptListsPort adapts the lists service to the domain port interface
type adaptListsPort struct{ svc listssvc.Service }

// Materialize implements the domain ServicePort interface
func (a adaptListsPort) Materialize(
	ctx context.Context,
	ownerID string,
	in listsdom.SaveStreamInput,
	emit listsdom.Emit,
) error {
	return a.svc.Materialize(ctx, ownerID, in, emit)
}
