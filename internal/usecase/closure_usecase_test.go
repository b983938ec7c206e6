package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClosureUseCase_CreateFromRange(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	t.Run("invalid range", func(t *testing.T) {
		uc := NewClosureUseCase(nil, nil, nil, nil)
		_, err := uc.CreateFromRange(context.Background(), "cli-1", to, from)
		if !errors.Is(err, ErrInvalidClosureRange) {
			t.Fatalf("expected ErrInvalidClosureRange, got %v", err)
		}
	})

	t.Run("no completed services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClosureRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClosureUseCase(repo, serviceRepo, clientRepo, nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		serviceRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.CreateFromRange(context.Background(), "cli-1", from, to)
		if !errors.Is(err, ErrNoServicesToClose) {
			t.Fatalf("expected ErrNoServicesToClose, got %v", err)
		}
	})

	t.Run("already closed services are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClosureRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClosureUseCase(repo, serviceRepo, clientRepo, nil)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		serviceRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Service{
			{ID: "svc-1", ClosureID: "closure-0", Value: 100000},
		}, nil)

		_, err := uc.CreateFromRange(context.Background(), "cli-1", from, to)
		if !errors.Is(err, ErrNoServicesToClose) {
			t.Fatalf("expected ErrNoServicesToClose, got %v", err)
		}
	})

	t.Run("success sums values and links services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClosureRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewClosureUseCase(repo, serviceRepo, clientRepo, settingsRepo)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		serviceRepo.EXPECT().List(gomock.Any(), interfaces.ServiceFilter{
			ClientID: "cli-1",
			Status:   entities.ServiceStatusCompleted,
			From:     from,
			To:       to,
		}).Return([]entities.Service{
			{ID: "svc-1", Value: 450000},
			{ID: "svc-2", Value: 300000},
			{ID: "svc-3", ClosureID: "closure-0", Value: 999999},
		}, nil)
		settingsRepo.EXPECT().NextFolio(gomock.Any(), FolioSequenceClosures).Return(int64(12), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, c entities.ServiceClosure) (entities.ServiceClosure, error) {
				if c.Total != 750000 || len(c.ServiceIDs) != 2 || c.Status != entities.ClosureStatusOpen {
					t.Fatalf("unexpected closure: %+v", c)
				}
				return c, nil
			})
		serviceRepo.EXPECT().AssignClosure(gomock.Any(), "svc-1", gomock.Any()).Return(entities.Service{ID: "svc-1"}, nil)
		serviceRepo.EXPECT().AssignClosure(gomock.Any(), "svc-2", gomock.Any()).Return(entities.Service{ID: "svc-2"}, nil)

		closure, err := uc.CreateFromRange(context.Background(), "cli-1", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closure.Folio != 12 {
			t.Fatalf("expected folio 12, got %d", closure.Folio)
		}
	})

	t.Run("link failure does not fail the closure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClosureRepository(ctrl)
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewClosureUseCase(repo, serviceRepo, clientRepo, settingsRepo)

		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		serviceRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Service{{ID: "svc-1", Value: 100000}}, nil)
		settingsRepo.EXPECT().NextFolio(gomock.Any(), FolioSequenceClosures).Return(int64(13), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, c entities.ServiceClosure) (entities.ServiceClosure, error) { return c, nil })
		serviceRepo.EXPECT().AssignClosure(gomock.Any(), "svc-1", gomock.Any()).Return(entities.Service{}, errors.New("db"))

		if _, err := uc.CreateFromRange(context.Background(), "cli-1", from, to); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_IssueFromClosure(t *testing.T) {
	t.Run("closure not open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		closureRepo := mock_interfaces.NewMockIClosureRepository(ctrl)
		uc := NewInvoiceUseCase(nil, closureRepo, nil, nil, nil)

		closureRepo.EXPECT().GetByID(gomock.Any(), "closure-1").
			Return(entities.ServiceClosure{ID: "closure-1", Status: entities.ClosureStatusInvoiced}, nil)

		_, err := uc.IssueFromClosure(context.Background(), "closure-1")
		if !errors.Is(err, ErrClosureAlreadyBilled) {
			t.Fatalf("expected ErrClosureAlreadyBilled, got %v", err)
		}
	})

	t.Run("issue success applies iva and marks closure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		closureRepo := mock_interfaces.NewMockIClosureRepository(ctrl)
		settingsRepo := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewInvoiceUseCase(repo, closureRepo, nil, settingsRepo, nil)

		closureRepo.EXPECT().GetByID(gomock.Any(), "closure-1").Return(entities.ServiceClosure{
			ID:       "closure-1",
			ClientID: "cli-1",
			Total:    750000,
			Status:   entities.ClosureStatusOpen,
		}, nil)
		settingsRepo.EXPECT().NextFolio(gomock.Any(), FolioSequenceInvoices).Return(int64(88), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
				if inv.Net != 750000 || inv.IVA != 142500 || inv.Total != 892500 {
					t.Fatalf("unexpected amounts: %+v", inv)
				}
				if inv.Status != entities.InvoiceStatusIssued || inv.ClosureID != "closure-1" {
					t.Fatalf("unexpected invoice: %+v", inv)
				}
				return inv, nil
			})
		closureRepo.EXPECT().UpdateStatus(gomock.Any(), "closure-1", entities.ClosureStatusInvoiced).
			Return(entities.ServiceClosure{ID: "closure-1", Status: entities.ClosureStatusInvoiced}, nil)

		inv, err := uc.IssueFromClosure(context.Background(), "closure-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Folio != 88 {
			t.Fatalf("expected folio 88, got %d", inv.Folio)
		}
	})
}

func TestInvoiceUseCase_SendEmail(t *testing.T) {
	t.Run("email gateway not configured", func(t *testing.T) {
		// SMTP unset at wiring time leaves the gateway nil; no repo is touched.
		uc := NewInvoiceUseCase(nil, nil, nil, nil, nil)

		err := uc.SendEmail(context.Background(), "inv-1")
		if !errors.Is(err, ErrEmailNotConfigured) {
			t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
		}
	})

	t.Run("mails the summary to the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewInvoiceUseCase(repo, nil, clientRepo, nil, email)

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Folio: 88, ClientID: "cli-1", Total: 892500}, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").
			Return(entities.Client{ID: "cli-1", Name: "Constructora Sur", Email: "ops@cliente.cl"}, nil)
		email.EXPECT().SendInvoiceEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, in interfaces.InvoiceEmailInput) error {
				if in.To != "ops@cliente.cl" || in.InvoiceFolio != 88 {
					t.Fatalf("unexpected email input: %+v", in)
				}
				return nil
			})

		if err := uc.SendEmail(context.Background(), "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
