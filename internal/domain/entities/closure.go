package entities

import "time"

// ClosureStatus represents the lifecycle of a service closure.

type ClosureStatus string

const (
	ClosureStatusOpen     ClosureStatus = "open"
	ClosureStatusInvoiced ClosureStatus = "invoiced"
)

// ServiceClosure groups a client's completed services over a date range as
// the precursor to an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
type ServiceClosure struct {
	ID         string        `json:"id"`
	Folio      int64         `json:"folio"`
	ClientID   string        `json:"client_id"`
	ServiceIDs []string      `json:"service_ids"`
	DateFrom   time.Time     `json:"date_from"`
	DateTo     time.Time     `json:"date_to"`
	Total      float64       `json:"total"`
	Status     ClosureStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
