package response

import (
	"encoding/base64"
	"time"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase"
)

// InspectionSummary is the embedded inspection view on a service. Photo
// payloads are summarized as counts; the PDF carries the actual images.
type InspectionSummary struct {
	EquipmentChecked    []string       `json:"equipment_checked"`
	VehicleObservations string         `json:"vehicle_observations,omitempty"`
	ClientName          string         `json:"client_name,omitempty"`
	ClientRUT           string         `json:"client_rut,omitempty"`
	PhotoCounts         map[string]int `json:"photo_counts,omitempty"`
	CompletedAt         time.Time      `json:"completed_at"`
}

type ServiceResponse struct {
	ID          string             `json:"id"`
	Folio       int64              `json:"folio"`
	ClientID    string             `json:"client_id"`
	CraneID     string             `json:"crane_id"`
	OperatorID  string             `json:"operator_id"`
	Origin      string             `json:"origin"`
	Destination string             `json:"destination"`
	ServiceDate time.Time          `json:"service_date"`
	Value       float64            `json:"value"`
	Status      string             `json:"status"`
	ClosureID   string             `json:"closure_id,omitempty"`
	Inspection  *InspectionSummary `json:"inspection,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:          s.ID,
		Folio:       s.Folio,
		ClientID:    s.ClientID,
		CraneID:     s.CraneID,
		OperatorID:  s.OperatorID,
		Origin:      s.Origin,
		Destination: s.Destination,
		ServiceDate: s.ServiceDate,
		Value:       s.Value,
		Status:      string(s.Status),
		ClosureID:   s.ClosureID,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Inspection != nil {
		summary := &InspectionSummary{
			EquipmentChecked:    s.Inspection.EquipmentChecked,
			VehicleObservations: s.Inspection.VehicleObservations,
			ClientName:          s.Inspection.ClientName,
			ClientRUT:           s.Inspection.ClientRUT,
			CompletedAt:         s.Inspection.CompletedAt,
		}
		if len(s.Inspection.PhotoSets) > 0 {
			summary.PhotoCounts = make(map[string]int, len(s.Inspection.PhotoSets))
			for set, photos := range s.Inspection.PhotoSets {
				summary.PhotoCounts[set] = len(photos)
			}
		}
		resp.Inspection = summary
	}
	return resp
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

// ProgressEvent is one PDF pipeline progress callback surfaced to the caller.
type ProgressEvent struct {
	Percent int    `json:"percent"`
	Stage   string `json:"stage"`
}

// StartServiceResponse reports the outcome of the start-service flow,
// including the generated report (base64) when the PDF stage succeeded.
type StartServiceResponse struct {
	Service        ServiceResponse `json:"service"`
	AlreadyStarted bool            `json:"already_started"`
	PDFFileName    string          `json:"pdf_file_name,omitempty"`
	PDFBase64      string          `json:"pdf_base64,omitempty"`
	Progress       []ProgressEvent `json:"progress,omitempty"`
	Warnings       []string        `json:"warnings,omitempty"`
}

func FromStartServiceResult(r usecase.StartServiceResult, progress []ProgressEvent) StartServiceResponse {
	resp := StartServiceResponse{
		Service:        FromService(r.Service),
		AlreadyStarted: r.AlreadyStarted,
		PDFFileName:    r.PDFFileName,
		Progress:       progress,
		Warnings:       r.Warnings,
	}
	if len(r.PDF) > 0 {
		resp.PDFBase64 = base64.StdEncoding.EncodeToString(r.PDF)
	}
	return resp
}
