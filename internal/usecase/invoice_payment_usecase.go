package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrInvoicePaymentNotFound     = errors.New("invoice payment not found")
	ErrInvalidPaymentInvoiceID    = errors.New("invalid invoice_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IInvoicePaymentUseCase encapsulates the client-portal "pay an invoice"
// behavior: call the provider, persist the result, and mark the invoice paid
// when the provider approves.

type IInvoicePaymentUseCase interface {
	CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error)
}

type InvoicePaymentUseCase struct {
	repo        interfaces.IInvoicePaymentRepository
	invoiceRepo interfaces.IInvoiceRepository
	gateway     interfaces.IPaymentGateway
}

var _ IInvoicePaymentUseCase = (*InvoicePaymentUseCase)(nil)

func NewInvoicePaymentUseCase(repo interfaces.IInvoicePaymentRepository, invoiceRepo interfaces.IInvoiceRepository, gateway interfaces.IPaymentGateway) *InvoicePaymentUseCase {
	return &InvoicePaymentUseCase{repo: repo, invoiceRepo: invoiceRepo, gateway: gateway}
}

func (u *InvoicePaymentUseCase) CreateAndApprove(ctx context.Context, invoiceID string, mpPayload json.RawMessage) (entities.InvoicePayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_invoice_id=%q payload_len=%d", invoiceID, len(mpPayload))
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.InvoicePayment{}, ErrInvalidPaymentInvoiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		log.Printf("[payment][usecase] invalid payload invoice_id=%s", invoiceID)
		return entities.InvoicePayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.InvoicePayment{}, errors.New("payment gateway not configured")
	}

	inv, err := u.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading invoice invoice_id=%s err=%v", invoiceID, err)
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrInvoiceNotFound
	}
	if inv.Status != entities.InvoiceStatusIssued {
		log.Printf("[payment][usecase] invoice not payable invoice_id=%s status=%s", invoiceID, inv.Status)
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	// Ensure basic linkage with the invoice when the caller didn't provide
	// it. Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = invoiceID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Factura %d", inv.Folio)
		}

		// The source of truth for amount is the invoice in DB.
		reqMap["transaction_amount"] = inv.Total
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	log.Printf("[payment][usecase] calling payment gateway invoice_id=%s", invoiceID)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		if isGatewayUnauthorized(err) {
			return entities.InvoicePayment{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.InvoicePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.InvoicePayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerPaymentID, providerStatus)

	status := entities.PaymentStatusDenied
	if providerStatus == "approved" {
		status = entities.PaymentStatusApproved
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed invoice_id=%s err=%v", invoiceID, err)
	}

	p := entities.InvoicePayment{
		ID:           providerPaymentID,
		InvoiceID:    invoiceID,
		Date:         time.Now().UTC(),
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed invoice_id=%s payment_id=%s err=%v", invoiceID, p.ID, err)
		return entities.InvoicePayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, markErr := u.invoiceRepo.UpdateStatus(ctx, invoiceID, entities.InvoiceStatusPaid); markErr != nil {
			// The payment row is persisted; reconciliation catches the
			// invoice status on the next read.
			log.Printf("[payment][usecase] invoice status update failed invoice_id=%s err=%v", invoiceID, markErr)
		}
	}

	log.Printf("[payment][usecase] create-and-approve success invoice_id=%s payment_id=%s status=%s", invoiceID, created.ID, created.Status)
	return created, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func (u *InvoicePaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrInvoicePaymentNotFound
	}
	return p, nil
}

func (u *InvoicePaymentUseCase) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.InvoicePayment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidPaymentInvoiceID
	}
	return u.repo.ListByInvoiceID(ctx, invoiceID)
}
