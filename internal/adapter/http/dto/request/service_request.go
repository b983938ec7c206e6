package request

import (
	"errors"
	"strings"
	"time"

	"tms_gruas/internal/domain/entities"
)

var ErrInvalidServiceDate = errors.New("invalid service date")

// ServiceCreateRequest is the payload for creating or updating a crane
// service. ServiceDate accepts RFC3339 or a plain date.
type ServiceCreateRequest struct {
	ClientID    string  `json:"client_id" binding:"required"`
	CraneID     string  `json:"crane_id" binding:"required"`
	OperatorID  string  `json:"operator_id" binding:"required"`
	Origin      string  `json:"origin" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	ServiceDate string  `json:"service_date" binding:"required"`
	Value       float64 `json:"value"`
}

func (r ServiceCreateRequest) ToEntity() (entities.Service, error) {
	date, err := parseDate(r.ServiceDate)
	if err != nil {
		return entities.Service{}, err
	}
	return entities.Service{
		ClientID:    strings.TrimSpace(r.ClientID),
		CraneID:     strings.TrimSpace(r.CraneID),
		OperatorID:  strings.TrimSpace(r.OperatorID),
		Origin:      strings.TrimSpace(r.Origin),
		Destination: strings.TrimSpace(r.Destination),
		ServiceDate: date,
		Value:       r.Value,
	}, nil
}

// ServiceStatusRequest is the payload for a status transition.
type ServiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidServiceDate
}
