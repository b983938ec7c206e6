package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tms_gruas/internal/domain/entities"
	mock_interfaces "tms_gruas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoicePaymentUseCase_CreateAndApprove(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"ops@cliente.cl"}}`)

	t.Run("invalid invoice id", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "   ", payload)
		if !errors.Is(err, ErrInvalidPaymentInvoiceID) {
			t.Fatalf("expected ErrInvalidPaymentInvoiceID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewInvoicePaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "inv-1", json.RawMessage("{not json"))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invoice not payable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoiceRepo, gateway)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("approved payment marks invoice paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoiceRepo, gateway)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{
			ID:     "inv-1",
			Folio:  88,
			Total:  892500,
			Status: entities.InvoiceStatusIssued,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(requestPayload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "inv-1" {
					t.Fatalf("expected external_reference enrichment, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != float64(892500) {
					t.Fatalf("expected amount from invoice, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) {
				if p.ID != "mp-123" || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			})
		invoiceRepo.EXPECT().UpdateStatus(gomock.Any(), "inv-1", entities.InvoiceStatusPaid).
			Return(entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid}, nil)

		created, err := uc.CreateAndApprove(context.Background(), "inv-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", created.Status)
		}
	})

	t.Run("denied payment keeps invoice issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoiceRepo, gateway)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Total: 1000, Status: entities.InvoiceStatusIssued}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-9", "rejected", json.RawMessage(`{"id":"mp-9","status":"rejected"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error) { return p, nil })
		// No UpdateStatus call: the invoice stays issued.

		created, err := uc.CreateAndApprove(context.Background(), "inv-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.PaymentStatusDenied {
			t.Fatalf("expected denied, got %s", created.Status)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIInvoicePaymentRepository(ctrl)
		invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewInvoicePaymentUseCase(repo, invoiceRepo, gateway)

		invoiceRepo.EXPECT().GetByID(gomock.Any(), "inv-1").
			Return(entities.Invoice{ID: "inv-1", Total: 1000, Status: entities.InvoiceStatusIssued}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`mercadopago error: {"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "inv-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})
}
