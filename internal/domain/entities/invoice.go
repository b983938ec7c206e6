package entities

import (
	"encoding/json"
	"time"
)

// InvoiceStatus represents the billing state of an invoice.

type InvoiceStatus string

const (
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusVoid   InvoiceStatus = "void"
)

// IVARate is the Chilean value-added tax applied on top of the net amount.
const IVARate = 0.19

// Invoice is issued from a service closure.
//
// Storage model (DynamoDB):
//   - PK: id
type Invoice struct {
	ID        string        `json:"id"`
	Folio     int64         `json:"folio"`
	ClientID  string        `json:"client_id"`
	ClosureID string        `json:"closure_id"`
	Net       float64       `json:"net"`
	IVA       float64       `json:"iva"`
	Total     float64       `json:"total"`
	Status    InvoiceStatus `json:"status"`
	DueDate   time.Time     `json:"due_date"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment is a client-portal payment against an issued invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// Provider payload:
//   - MPPayloadRaw keeps the original provider response (JSON) for
//     traceability/audit.
//   - MPPayload is an optional parsed representation, useful for debugging.
type InvoicePayment struct {
	ID        string        `json:"id"`
	InvoiceID string        `json:"invoice_id"`
	Date      time.Time     `json:"date"`
	Status    PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
