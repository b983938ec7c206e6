package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidInvoiceID   = errors.New("invalid invoice id")
	ErrInvoiceNotPayable  = errors.New("invoice is not payable")
	ErrEmailNotConfigured = errors.New("email gateway not configured")
)

// FolioSequenceInvoices names the folio counter for invoices.
const FolioSequenceInvoices = "invoices"

// Invoices fall due 30 days after issue.
const invoiceDueDays = 30

// IInvoiceUseCase issues invoices from closures and tracks their billing
// state.

type IInvoiceUseCase interface {
	IssueFromClosure(ctx context.Context, closureID string) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context, clientID string) ([]entities.Invoice, error)
	MarkPaid(ctx context.Context, id string) (entities.Invoice, error)
	SendEmail(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo         interfaces.IInvoiceRepository
	closureRepo  interfaces.IClosureRepository
	clientRepo   interfaces.IClientRepository
	settingsRepo interfaces.ISettingsRepository
	email        interfaces.IEmailGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	closureRepo interfaces.IClosureRepository,
	clientRepo interfaces.IClientRepository,
	settingsRepo interfaces.ISettingsRepository,
	email interfaces.IEmailGateway,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, closureRepo: closureRepo, clientRepo: clientRepo, settingsRepo: settingsRepo, email: email}
}

// roundCLP rounds to whole pesos; Chilean invoices do not carry cents.
func roundCLP(v float64) float64 {
	return math.Round(v)
}

// IssueFromClosure creates an invoice for an open closure: net = closure
// total, IVA on top, and marks the closure invoiced.
func (u *InvoiceUseCase) IssueFromClosure(ctx context.Context, closureID string) (entities.Invoice, error) {
	closureID = strings.TrimSpace(closureID)
	if closureID == "" {
		return entities.Invoice{}, ErrInvalidClosureID
	}

	closure, err := u.closureRepo.GetByID(ctx, closureID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if closure.ID == "" {
		return entities.Invoice{}, ErrClosureNotFound
	}
	if closure.Status != entities.ClosureStatusOpen {
		return entities.Invoice{}, ErrClosureAlreadyBilled
	}

	folio, err := u.settingsRepo.NextFolio(ctx, FolioSequenceInvoices)
	if err != nil {
		return entities.Invoice{}, err
	}

	now := time.Now().UTC()
	net := roundCLP(closure.Total)
	iva := roundCLP(net * entities.IVARate)
	invoice := entities.Invoice{
		ID:        uuid.NewString(),
		Folio:     folio,
		ClientID:  closure.ClientID,
		ClosureID: closure.ID,
		Net:       net,
		IVA:       iva,
		Total:     net + iva,
		Status:    entities.InvoiceStatusIssued,
		DueDate:   now.AddDate(0, 0, invoiceDueDays),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.repo.Create(ctx, invoice)
	if err != nil {
		return entities.Invoice{}, err
	}

	if _, markErr := u.closureRepo.UpdateStatus(ctx, closure.ID, entities.ClosureStatusInvoiced); markErr != nil {
		log.Printf("[invoice][usecase] closure status update failed closure_id=%s err=%v", closure.ID, markErr)
	}

	log.Printf("[invoice][usecase] issued invoice_id=%s folio=%d total=%.0f", created.ID, created.Folio, created.Total)
	return created, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	return u.repo.List(ctx, strings.TrimSpace(clientID))
}

func (u *InvoiceUseCase) MarkPaid(ctx context.Context, id string) (entities.Invoice, error) {
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.Status != entities.InvoiceStatusIssued {
		return entities.Invoice{}, ErrInvoiceNotPayable
	}
	return u.repo.UpdateStatus(ctx, inv.ID, entities.InvoiceStatusPaid)
}

// SendEmail mails the invoice summary to the client. The gateway is nil when
// SMTP is not configured.
func (u *InvoiceUseCase) SendEmail(ctx context.Context, id string) error {
	if u.email == nil {
		return ErrEmailNotConfigured
	}
	inv, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	client, err := u.clientRepo.GetByID(ctx, inv.ClientID)
	if err != nil {
		return err
	}
	if client.ID == "" {
		return ErrClientNotFound
	}
	return u.email.SendInvoiceEmail(ctx, interfaces.InvoiceEmailInput{
		To:           client.Email,
		ClientName:   client.Name,
		InvoiceFolio: inv.Folio,
		Total:        inv.Total,
		DueDate:      inv.DueDate,
	})
}
