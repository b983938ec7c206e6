package interfaces

import (
	"context"

	"tms_gruas/internal/domain/entities"
)

// ICraneRepository abstracts DynamoDB persistence for Crane.

type ICraneRepository interface {
	Create(ctx context.Context, c entities.Crane) (entities.Crane, error)
	GetByID(ctx context.Context, id string) (entities.Crane, error)
	List(ctx context.Context) ([]entities.Crane, error)
	Update(ctx context.Context, c entities.Crane) (entities.Crane, error)
	Delete(ctx context.Context, id string) error
}

// IOperatorRepository abstracts DynamoDB persistence for Operator.

type IOperatorRepository interface {
	Create(ctx context.Context, o entities.Operator) (entities.Operator, error)
	GetByID(ctx context.Context, id string) (entities.Operator, error)
	List(ctx context.Context) ([]entities.Operator, error)
	Update(ctx context.Context, o entities.Operator) (entities.Operator, error)
	Delete(ctx context.Context, id string) error
}
