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
	ErrClosureNotFound      = errors.New("closure not found")
	ErrInvalidClosureID     = errors.New("invalid closure id")
	ErrInvalidClosureRange  = errors.New("invalid closure date range")
	ErrNoServicesToClose    = errors.New("no completed services in range")
	ErrClosureAlreadyBilled = errors.New("closure already invoiced")
)

// FolioSequenceClosures names the folio counter for closures.
const FolioSequenceClosures = "closures"

// IClosureUseCase groups a client's completed services into a closure that
// an invoice can later be issued from.

type IClosureUseCase interface {
	CreateFromRange(ctx context.Context, clientID string, from, to time.Time) (entities.ServiceClosure, error)
	GetByID(ctx context.Context, id string) (entities.ServiceClosure, error)
	List(ctx context.Context, clientID string) ([]entities.ServiceClosure, error)
}

type ClosureUseCase struct {
	repo         interfaces.IClosureRepository
	serviceRepo  interfaces.IServiceRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ISettingsRepository
}

var _ IClosureUseCase = (*ClosureUseCase)(nil)

func NewClosureUseCase(
	repo interfaces.IClosureRepository,
	serviceRepo interfaces.IServiceRepository,
	clientRepo interfaces.IClientRepository,
	settingsRepo interfaces.ISettingsRepository,
) *ClosureUseCase {
	return &ClosureUseCase{repo: repo, serviceRepo: serviceRepo, clientRepo: clientRepo, settingsRepo: settingsRepo}
}

// CreateFromRange collects the client's completed, not-yet-closed services
// inside [from, to], sums their values and persists the closure, then stamps
// the closure id back onto each service.
func (u *ClosureUseCase) CreateFromRange(ctx context.Context, clientID string, from, to time.Time) (entities.ServiceClosure, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.ServiceClosure{}, ErrInvalidClientID
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return entities.ServiceClosure{}, ErrInvalidClosureRange
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.ServiceClosure{}, err
	}
	if client.ID == "" {
		return entities.ServiceClosure{}, ErrClientNotFound
	}

	services, err := u.serviceRepo.List(ctx, interfaces.ServiceFilter{
		ClientID: clientID,
		Status:   entities.ServiceStatusCompleted,
		From:     from,
		To:       to,
	})
	if err != nil {
		return entities.ServiceClosure{}, err
	}

	var (
		ids   []string
		total float64
	)
	for _, svc := range services {
		if svc.ClosureID != "" {
			continue
		}
		ids = append(ids, svc.ID)
		total += svc.Value
	}
	if len(ids) == 0 {
		return entities.ServiceClosure{}, ErrNoServicesToClose
	}

	folio, err := u.settingsRepo.NextFolio(ctx, FolioSequenceClosures)
	if err != nil {
		return entities.ServiceClosure{}, err
	}

	now := time.Now().UTC()
	closure := entities.ServiceClosure{
		ID:         uuid.NewString(),
		Folio:      folio,
		ClientID:   clientID,
		ServiceIDs: ids,
		DateFrom:   from,
		DateTo:     to,
		Total:      total,
		Status:     entities.ClosureStatusOpen,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := u.repo.Create(ctx, closure)
	if err != nil {
		return entities.ServiceClosure{}, err
	}

	for _, id := range ids {
		if _, assignErr := u.serviceRepo.AssignClosure(ctx, id, created.ID); assignErr != nil {
			// The closure row is already the source of truth for membership;
			// a failed back-reference only degrades the service detail view.
			log.Printf("[closure][usecase] closure link failed service_id=%s closure_id=%s err=%v", id, created.ID, assignErr)
		}
	}

	log.Printf("[closure][usecase] created closure_id=%s folio=%d services=%d total=%.2f", created.ID, created.Folio, len(ids), total)
	return created, nil
}

func (u *ClosureUseCase) GetByID(ctx context.Context, id string) (entities.ServiceClosure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceClosure{}, ErrInvalidClosureID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceClosure{}, err
	}
	if c.ID == "" {
		return entities.ServiceClosure{}, ErrClosureNotFound
	}
	return c, nil
}

func (u *ClosureUseCase) List(ctx context.Context, clientID string) ([]entities.ServiceClosure, error) {
	return u.repo.List(ctx, strings.TrimSpace(clientID))
}
