package response

import (
	"time"

	"tms_gruas/internal/domain/entities"
)

type ClosureResponse struct {
	ID         string    `json:"id"`
	Folio      int64     `json:"folio"`
	ClientID   string    `json:"client_id"`
	ServiceIDs []string  `json:"service_ids"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromClosure(c entities.ServiceClosure) ClosureResponse {
	return ClosureResponse{
		ID:         c.ID,
		Folio:      c.Folio,
		ClientID:   c.ClientID,
		ServiceIDs: c.ServiceIDs,
		DateFrom:   c.DateFrom,
		DateTo:     c.DateTo,
		Total:      c.Total,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func FromClosures(closures []entities.ServiceClosure) []ClosureResponse {
	out := make([]ClosureResponse, 0, len(closures))
	for _, c := range closures {
		out = append(out, FromClosure(c))
	}
	return out
}

type InvoiceResponse struct {
	ID        string    `json:"id"`
	Folio     int64     `json:"folio"`
	ClientID  string    `json:"client_id"`
	ClosureID string    `json:"closure_id"`
	Net       float64   `json:"net"`
	IVA       float64   `json:"iva"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	DueDate   time.Time `json:"due_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:        inv.ID,
		Folio:     inv.Folio,
		ClientID:  inv.ClientID,
		ClosureID: inv.ClosureID,
		Net:       inv.Net,
		IVA:       inv.IVA,
		Total:     inv.Total,
		Status:    string(inv.Status),
		DueDate:   inv.DueDate,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}

type InvoicePaymentResponse struct {
	ID        string                 `json:"id"`
	InvoiceID string                 `json:"invoice_id"`
	Date      time.Time              `json:"date"`
	Status    string                 `json:"status"`
	MPPayload map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromInvoicePayment(p entities.InvoicePayment) InvoicePaymentResponse {
	return InvoicePaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Date:      p.Date,
		Status:    string(p.Status),
		MPPayload: p.MPPayload,
	}
}
