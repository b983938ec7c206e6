package interfaces

import (
	"context"
	"time"

	"tms_gruas/internal/domain/entities"
)

// ServiceFilter narrows service listings (calendar and dashboard views).
// Zero fields are ignored.
type ServiceFilter struct {
	ClientID string
	Status   entities.ServiceStatus
	From     time.Time
	To       time.Time
}

// IServiceRepository abstracts DynamoDB persistence for Service.
//
// UpdateStatus is conditional on the current status: it returns the zero
// value when the row is missing or no longer in the expected status, which
// keeps the pending -> in_progress transition idempotent for callers.

type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, filter ServiceFilter) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ServiceStatus) (entities.Service, error)
	UpdateInspection(ctx context.Context, id string, form entities.InspectionForm) (entities.Service, error)
	AssignClosure(ctx context.Context, id, closureID string) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
