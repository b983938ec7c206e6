package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tms_gruas/internal/domain/entities"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func serviceInput() entities.Service {
	return entities.Service{
		ClientID:    "cli-1",
		CraneID:     "crane-1",
		OperatorID:  "op-1",
		Origin:      "Av. Argentina 100, Valparaiso",
		Destination: "Camino La Polvora km 8",
		ServiceDate: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		Value:       450000,
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil, nil)
		in := serviceInput()
		in.CraneID = "  "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil, nil)
		in := serviceInput()
		in.Value = -1
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewServiceUseCase(repo, clientRepo, nil, nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), serviceInput())
		if !errors.Is(err, ErrServiceClientNotFound) {
			t.Fatalf("expected ErrServiceClientNotFound, got %v", err)
		}
	})

	t.Run("create success assigns folio and pending status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewServiceUseCase(repo, clientRepo, settingsRepo, email)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Constructora Sur", Email: "ops@cliente.cl"}, nil)
		settingsRepo.EXPECT().NextFolio(gomock.Any(), FolioSequenceServices).Return(int64(1043), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" || s.Folio != 1043 || s.Status != entities.ServiceStatusPending {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			})
		email.EXPECT().SendServiceConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		created, err := uc.Create(context.Background(), serviceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Folio != 1043 {
			t.Fatalf("expected folio 1043, got %d", created.Folio)
		}
	})

	t.Run("confirmation email failure does not fail creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewServiceUseCase(repo, clientRepo, settingsRepo, email)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Email: "ops@cliente.cl"}, nil)
		settingsRepo.EXPECT().NextFolio(gomock.Any(), FolioSequenceServices).Return(int64(1), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s entities.Service) (entities.Service, error) { return s, nil })
		email.EXPECT().SendServiceConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		if _, err := uc.Create(context.Background(), serviceInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("preserves folio, status, inspection and closure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil, nil)

		form := validInspectionForm()
		current := entities.Service{
			ID:         "svc-1",
			Folio:      7,
			Status:     entities.ServiceStatusInProgress,
			Inspection: &form,
			ClosureID:  "closure-1",
			CreatedAt:  time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		}
		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, s entities.Service) (entities.Service, error) {
				if s.Folio != 7 || s.Status != entities.ServiceStatusInProgress || s.Inspection == nil || s.ClosureID != "closure-1" {
					t.Fatalf("owned fields were overwritten: %+v", s)
				}
				return s, nil
			})

		in := serviceInput()
		in.ID = "svc-1"
		in.Status = entities.ServiceStatusCancelled // must be ignored
		if _, err := uc.Update(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_Transition(t *testing.T) {
	t.Run("invalid target", func(t *testing.T) {
		uc := NewServiceUseCase(nil, nil, nil, nil)
		_, err := uc.Transition(context.Background(), "svc-1", entities.ServiceStatus("paused"))
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("disallowed transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusCompleted}, nil)

		_, err := uc.Transition(context.Background(), "svc-1", entities.ServiceStatusPending)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("lost conditional update surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusInProgress}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusInProgress, entities.ServiceStatusCompleted).
			Return(entities.Service{}, nil)

		_, err := uc.Transition(context.Background(), "svc-1", entities.ServiceStatusCompleted)
		if !errors.Is(err, ErrInvalidStatusTransition) {
			t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusInProgress}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusInProgress, entities.ServiceStatusCompleted).
			Return(entities.Service{ID: "svc-1", Status: entities.ServiceStatusCompleted}, nil)

		updated, err := uc.Transition(context.Background(), "svc-1", entities.ServiceStatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.ServiceStatusCompleted {
			t.Fatalf("expected completed, got %s", updated.Status)
		}
	})
}
