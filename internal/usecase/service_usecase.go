package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrServiceNotFound          = errors.New("service not found")
	ErrInvalidServiceID         = errors.New("invalid service id")
	ErrInvalidServiceInput      = errors.New("invalid service input")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrServiceClientNotFound    = errors.New("client not found for service")
	ErrServiceAlreadyInProgress = errors.New("service already in progress")
)

// FolioSequenceServices names the folio counter for services.
const FolioSequenceServices = "services"

// IServiceUseCase exposes crane service management: creation with folio
// assignment, calendar listing, and guarded status transitions.

type IServiceUseCase interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Transition(ctx context.Context, id string, target entities.ServiceStatus) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo         interfaces.IServiceRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ISettingsRepository
	email        interfaces.IEmailGateway
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

// NewServiceUseCase wires the service flows. email may be nil; confirmation
// mail is best-effort and never fails service creation.
func NewServiceUseCase(
	repo interfaces.IServiceRepository,
	clientRepo interfaces.IClientRepository,
	settingsRepo interfaces.ISettingsRepository,
	email interfaces.IEmailGateway,
) *ServiceUseCase {
	return &ServiceUseCase{repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo, email: email}
}

func (u *ServiceUseCase) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ClientID = strings.TrimSpace(s.ClientID)
	s.CraneID = strings.TrimSpace(s.CraneID)
	s.OperatorID = strings.TrimSpace(s.OperatorID)
	if s.ClientID == "" || s.CraneID == "" || s.OperatorID == "" || s.ServiceDate.IsZero() {
		return entities.Service{}, ErrInvalidServiceInput
	}
	if s.Value < 0 {
		return entities.Service{}, ErrInvalidServiceInput
	}

	client, err := u.clientRepo.GetByID(ctx, s.ClientID)
	if err != nil {
		return entities.Service{}, err
	}
	if client.ID == "" {
		return entities.Service{}, ErrServiceClientNotFound
	}

	folio, err := u.settingsRepo.NextFolio(ctx, FolioSequenceServices)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.Folio = folio
	s.Status = entities.ServiceStatusPending
	s.Inspection = nil
	s.ClosureID = ""
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, err
	}
	log.Printf("[service][usecase] created service_id=%s folio=%d client_id=%s", created.ID, created.Folio, created.ClientID)

	if u.email != nil && client.Email != "" {
		confirmErr := u.email.SendServiceConfirmation(ctx, interfaces.ServiceConfirmationInput{
			To:           client.Email,
			ClientName:   client.Name,
			ServiceFolio: created.Folio,
			ServiceDate:  created.ServiceDate,
			Origin:       created.Origin,
			Destination:  created.Destination,
		})
		if confirmErr != nil {
			log.Printf("[service][usecase] confirmation email failed service_id=%s err=%v", created.ID, confirmErr)
		}
	}
	return created, nil
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, filter interfaces.ServiceFilter) ([]entities.Service, error) {
	return u.repo.List(ctx, filter)
}

func (u *ServiceUseCase) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	current, err := u.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Service{}, err
	}

	// Folio, status, inspection and closure linkage are owned by their own
	// flows; a plain update never touches them.
	s.Folio = current.Folio
	s.Status = current.Status
	s.Inspection = current.Inspection
	s.ClosureID = current.ClosureID
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

// Transition applies a guarded status change (completed, cancelled). The
// pending -> in_progress transition belongs to the start-service flow.
func (u *ServiceUseCase) Transition(ctx context.Context, id string, target entities.ServiceStatus) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	if !target.IsValid() {
		return entities.Service{}, ErrInvalidStatusTransition
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if !current.Status.CanTransitionTo(target) {
		return entities.Service{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, current.Status, target)
	if err != nil {
		return entities.Service{}, err
	}
	if updated.ID == "" {
		// The row changed under us; surface it as a transition conflict.
		return entities.Service{}, ErrInvalidStatusTransition
	}
	log.Printf("[service][usecase] status service_id=%s %s -> %s", id, current.Status, target)
	return updated, nil
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
