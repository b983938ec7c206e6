package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func startableService() entities.Service {
	form := validInspectionForm()
	return entities.Service{
		ID:         "svc-1",
		Folio:      1042,
		ClientID:   "cli-1",
		Status:     entities.ServiceStatusPending,
		Inspection: &form,
	}
}

func TestStartServiceUseCase_Start(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewStartServiceUseCase(nil, nil, nil, nil)
		_, err := uc.Start(context.Background(), "   ", nil)
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, nil, nil, nil)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		_, err := uc.Start(context.Background(), "svc-1", nil)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("already in progress is a no-op success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, nil, nil, nil)

		svc := startableService()
		svc.Status = entities.ServiceStatusInProgress
		// At most one read; no status mutation, no PDF, no email.
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.AlreadyStarted {
			t.Fatal("expected AlreadyStarted")
		}

		// A second invocation behaves identically.
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		result, err = uc.Start(context.Background(), "svc-1", nil)
		if err != nil || !result.AlreadyStarted {
			t.Fatalf("expected idempotent success, got result=%+v err=%v", result, err)
		}
	})

	t.Run("not startable from completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, nil, nil, nil)

		svc := startableService()
		svc.Status = entities.ServiceStatusCompleted
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)

		_, err := uc.Start(context.Background(), "svc-1", nil)
		if !errors.Is(err, ErrServiceNotStartable) {
			t.Fatalf("expected ErrServiceNotStartable, got %v", err)
		}
	})

	t.Run("status update failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, nil, nil, nil)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(startableService(), nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(entities.Service{}, errors.New("db"))

		_, err := uc.Start(context.Background(), "svc-1", nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lost conditional update resolves to already started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, nil, nil, nil)

		svc := startableService()
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(entities.Service{}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(started, nil)

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.AlreadyStarted {
			t.Fatal("expected AlreadyStarted after lost conditional")
		}
	})

	t.Run("pdf failure does not roll back the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		pdf := mock_interfaces.NewMockIInspectionPDFGenerator(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, clientRepo, pdf, email)

		svc := startableService()
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(started, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Email: "ops@cliente.cl"}, nil)
		pdf.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("render"))
		// No email attempt without a PDF, and crucially no status rollback.

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Service.Status != entities.ServiceStatusInProgress {
			t.Fatalf("expected in_progress, got %s", result.Service.Status)
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "PDF generation failed") {
			t.Fatalf("expected pdf warning, got %v", result.Warnings)
		}
	})

	t.Run("email failure is warn-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		pdf := mock_interfaces.NewMockIInspectionPDFGenerator(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, clientRepo, pdf, email)

		svc := startableService()
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(started, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Constructora Sur", Email: "ops@cliente.cl"}, nil)
		pdf.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("%PDF-1.3"), nil)
		email.EXPECT().SendInspectionEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PDFFileName != "inspeccion-1042.pdf" {
			t.Fatalf("expected pdf file name, got %q", result.PDFFileName)
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "could not be sent") {
			t.Fatalf("expected email warning, got %v", result.Warnings)
		}
	})

	t.Run("nil email gateway is warn-only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		pdf := mock_interfaces.NewMockIInspectionPDFGenerator(ctrl)
		// SMTP unset at wiring time leaves the gateway nil.
		uc := NewStartServiceUseCase(serviceRepo, clientRepo, pdf, nil)

		svc := startableService()
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(started, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Constructora Sur", Email: "ops@cliente.cl"}, nil)
		pdf.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("%PDF-1.3"), nil)

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.PDFFileName != "inspeccion-1042.pdf" {
			t.Fatalf("expected pdf file name, got %q", result.PDFFileName)
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "not configured") {
			t.Fatalf("expected not-configured warning, got %v", result.Warnings)
		}
	})

	t.Run("full success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		pdf := mock_interfaces.NewMockIInspectionPDFGenerator(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, clientRepo, pdf, email)

		svc := startableService()
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(started, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1", Name: "Constructora Sur", Email: "ops@cliente.cl"}, nil)
		pdf.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("%PDF-1.3"), nil)
		email.EXPECT().SendInspectionEmail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, in interfaces.InspectionEmailInput) error {
				if in.To != "ops@cliente.cl" || in.ServiceFolio != 1042 {
					t.Fatalf("unexpected email input: %+v", in)
				}
				return nil
			})

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Warnings) != 0 {
			t.Fatalf("expected no warnings, got %v", result.Warnings)
		}
	})

	t.Run("no inspection skips pdf and email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		serviceRepo := mock_interfaces.NewMockIServiceRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		pdf := mock_interfaces.NewMockIInspectionPDFGenerator(ctrl)
		email := mock_interfaces.NewMockIEmailGateway(ctrl)
		uc := NewStartServiceUseCase(serviceRepo, clientRepo, pdf, email)

		svc := startableService()
		svc.Inspection = nil
		started := svc
		started.Status = entities.ServiceStatusInProgress

		serviceRepo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		serviceRepo.EXPECT().UpdateStatus(gomock.Any(), "svc-1", entities.ServiceStatusPending, entities.ServiceStatusInProgress).
			Return(started, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)

		result, err := uc.Start(context.Background(), "svc-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "no inspection") {
			t.Fatalf("expected inspection warning, got %v", result.Warnings)
		}
	})
}
