package interfaces

import (
	"context"
	"time"
)

// InspectionEmailInput carries the inspection summary and the generated PDF
// attached base64-encoded by the gateway.
type InspectionEmailInput struct {
	To           string
	ClientName   string
	OperatorName string
	ServiceFolio int64
	ServiceDate  time.Time
	PDF          []byte
	PDFFileName  string
}

// InvoiceEmailInput carries the invoice summary sent to the client.
type InvoiceEmailInput struct {
	To           string
	ClientName   string
	InvoiceFolio int64
	Total        float64
	DueDate      time.Time
}

// ServiceConfirmationInput notifies a client that a service was scheduled.
type ServiceConfirmationInput struct {
	To           string
	ClientName   string
	ServiceFolio int64
	ServiceDate  time.Time
	Origin       string
	Destination  string
}

// IEmailGateway abstracts outbound mail. Implementations are best-effort:
// callers decide whether a send failure is fatal to their flow.

type IEmailGateway interface {
	SendInspectionEmail(ctx context.Context, in InspectionEmailInput) error
	SendInvoiceEmail(ctx context.Context, in InvoiceEmailInput) error
	SendServiceConfirmation(ctx context.Context, in ServiceConfirmationInput) error
}
