package interfaces

import (
	"context"

	"tms_gruas/internal/domain/entities"
)

// IClosureRepository abstracts DynamoDB persistence for ServiceClosure.

type IClosureRepository interface {
	Create(ctx context.Context, c entities.ServiceClosure) (entities.ServiceClosure, error)
	GetByID(ctx context.Context, id string) (entities.ServiceClosure, error)
	List(ctx context.Context, clientID string) ([]entities.ServiceClosure, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClosureStatus) (entities.ServiceClosure, error)
}
