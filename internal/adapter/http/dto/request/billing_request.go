package request

import (
	"strings"
	"time"
)

// ClosureCreateRequest is the payload for grouping a client's completed
// services over a date range.
type ClosureCreateRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	DateFrom string `json:"date_from" binding:"required"`
	DateTo   string `json:"date_to" binding:"required"`
}

func (r ClosureCreateRequest) Range() (from, to time.Time, err error) {
	from, err = parseDate(r.DateFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = parseDate(r.DateTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// InvoiceIssueRequest is the payload for issuing an invoice from a closure.
type InvoiceIssueRequest struct {
	ClosureID string `json:"closure_id" binding:"required"`
}

func (r InvoiceIssueRequest) ResolveClosureID() string {
	return strings.TrimSpace(r.ClosureID)
}
