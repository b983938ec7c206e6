package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrCraneNotFound       = errors.New("crane not found")
	ErrInvalidCraneInput   = errors.New("invalid crane input")
	ErrOperatorNotFound    = errors.New("operator not found")
	ErrInvalidOperatorRUT  = errors.New("invalid operator rut")
	ErrInvalidFleetEntryID = errors.New("invalid fleet entry id")
)

// ICraneUseCase and IOperatorUseCase expose fleet management.

type ICraneUseCase interface {
	Create(ctx context.Context, c entities.Crane) (entities.Crane, error)
	GetByID(ctx context.Context, id string) (entities.Crane, error)
	List(ctx context.Context) ([]entities.Crane, error)
	Update(ctx context.Context, c entities.Crane) (entities.Crane, error)
	Delete(ctx context.Context, id string) error
}

type IOperatorUseCase interface {
	Create(ctx context.Context, o entities.Operator) (entities.Operator, error)
	GetByID(ctx context.Context, id string) (entities.Operator, error)
	List(ctx context.Context) ([]entities.Operator, error)
	Update(ctx context.Context, o entities.Operator) (entities.Operator, error)
	Delete(ctx context.Context, id string) error
}

type CraneUseCase struct {
	repo interfaces.ICraneRepository
}

var _ ICraneUseCase = (*CraneUseCase)(nil)

func NewCraneUseCase(repo interfaces.ICraneRepository) *CraneUseCase {
	return &CraneUseCase{repo: repo}
}

func (u *CraneUseCase) Create(ctx context.Context, c entities.Crane) (entities.Crane, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.PlateNumber = strings.ToUpper(strings.TrimSpace(c.PlateNumber))
	if c.Name == "" || c.PlateNumber == "" {
		return entities.Crane{}, ErrInvalidCraneInput
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *CraneUseCase) GetByID(ctx context.Context, id string) (entities.Crane, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Crane{}, ErrInvalidFleetEntryID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Crane{}, err
	}
	if c.ID == "" {
		return entities.Crane{}, ErrCraneNotFound
	}
	return c, nil
}

func (u *CraneUseCase) List(ctx context.Context) ([]entities.Crane, error) {
	return u.repo.List(ctx)
}

func (u *CraneUseCase) Update(ctx context.Context, c entities.Crane) (entities.Crane, error) {
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Crane{}, err
	}
	c.Name = strings.TrimSpace(c.Name)
	c.PlateNumber = strings.ToUpper(strings.TrimSpace(c.PlateNumber))
	if c.Name == "" || c.PlateNumber == "" {
		return entities.Crane{}, ErrInvalidCraneInput
	}
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CraneUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

type OperatorUseCase struct {
	repo interfaces.IOperatorRepository
}

var _ IOperatorUseCase = (*OperatorUseCase)(nil)

func NewOperatorUseCase(repo interfaces.IOperatorRepository) *OperatorUseCase {
	return &OperatorUseCase{repo: repo}
}

func (u *OperatorUseCase) Create(ctx context.Context, o entities.Operator) (entities.Operator, error) {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Operator{}, ErrInvalidCraneInput
	}
	if !entities.ValidRUT(o.RUT) {
		return entities.Operator{}, ErrInvalidOperatorRUT
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.RUT = entities.NormalizeRUT(o.RUT)
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.repo.Create(ctx, o)
}

func (u *OperatorUseCase) GetByID(ctx context.Context, id string) (entities.Operator, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Operator{}, ErrInvalidFleetEntryID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Operator{}, err
	}
	if o.ID == "" {
		return entities.Operator{}, ErrOperatorNotFound
	}
	return o, nil
}

func (u *OperatorUseCase) List(ctx context.Context) ([]entities.Operator, error) {
	return u.repo.List(ctx)
}

func (u *OperatorUseCase) Update(ctx context.Context, o entities.Operator) (entities.Operator, error) {
	current, err := u.GetByID(ctx, o.ID)
	if err != nil {
		return entities.Operator{}, err
	}
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Operator{}, ErrInvalidCraneInput
	}
	if !entities.ValidRUT(o.RUT) {
		return entities.Operator{}, ErrInvalidOperatorRUT
	}
	o.RUT = entities.NormalizeRUT(o.RUT)
	o.CreatedAt = current.CreatedAt
	o.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, o)
}

func (u *OperatorUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
