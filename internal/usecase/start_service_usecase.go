package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tms_gruas/internal/domain/entities"
	"tms_gruas/internal/usecase/interfaces"
)

var ErrServiceNotStartable = errors.New("service cannot be started from its current status")

// StartServiceResult reports the outcome of the start-service flow. Warnings
// carry the non-fatal stage failures (PDF, email) surfaced to the operator.
type StartServiceResult struct {
	Service        entities.Service
	PDF            []byte
	PDFFileName    string
	AlreadyStarted bool
	Warnings       []string
}

// IStartServiceUseCase sequences the "operator begins work" flow:
// status transition, inspection PDF, email dispatch.

type IStartServiceUseCase interface {
	Start(ctx context.Context, serviceID string, onProgress interfaces.ProgressFunc) (StartServiceResult, error)
}

// StartServiceUseCase runs the flow forward-only: once the status transition
// commits it is never rolled back by a downstream failure, because it mirrors
// a real-world action (the operator has begun work). Only the status update
// itself is fatal to the flow.
type StartServiceUseCase struct {
	serviceRepo interfaces.IServiceRepository
	clientRepo  interfaces.IClientRepository
	pdf         interfaces.IInspectionPDFGenerator
	email       interfaces.IEmailGateway
}

var _ IStartServiceUseCase = (*StartServiceUseCase)(nil)

// NewStartServiceUseCase wires the start flow. email may be nil; the report
// mail is best-effort and its absence surfaces as a warning.
func NewStartServiceUseCase(
	serviceRepo interfaces.IServiceRepository,
	clientRepo interfaces.IClientRepository,
	pdf interfaces.IInspectionPDFGenerator,
	email interfaces.IEmailGateway,
) *StartServiceUseCase {
	return &StartServiceUseCase{serviceRepo: serviceRepo, clientRepo: clientRepo, pdf: pdf, email: email}
}

func (u *StartServiceUseCase) Start(ctx context.Context, serviceID string, onProgress interfaces.ProgressFunc) (StartServiceResult, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return StartServiceResult{}, ErrInvalidServiceID
	}

	// Stage 1: idempotency check. A second start on an in-progress service
	// is a no-op success, not an error.
	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return StartServiceResult{}, err
	}
	if svc.ID == "" {
		return StartServiceResult{}, ErrServiceNotFound
	}
	if svc.Status == entities.ServiceStatusInProgress {
		log.Printf("[start][usecase] service already in progress service_id=%s", serviceID)
		return StartServiceResult{Service: svc, AlreadyStarted: true}, nil
	}
	if svc.Status != entities.ServiceStatusPending {
		return StartServiceResult{}, ErrServiceNotStartable
	}

	// Stage 2: status transition. The only fatal stage.
	updated, err := u.serviceRepo.UpdateStatus(ctx, serviceID, entities.ServiceStatusPending, entities.ServiceStatusInProgress)
	if err != nil {
		log.Printf("[start][usecase] status update failed service_id=%s err=%v", serviceID, err)
		return StartServiceResult{}, err
	}
	if updated.ID == "" {
		// Lost the conditional update; if another caller started it the
		// flow still counts as success.
		svc, err = u.serviceRepo.GetByID(ctx, serviceID)
		if err != nil {
			return StartServiceResult{}, err
		}
		if svc.Status == entities.ServiceStatusInProgress {
			return StartServiceResult{Service: svc, AlreadyStarted: true}, nil
		}
		return StartServiceResult{}, ErrServiceNotStartable
	}

	result := StartServiceResult{Service: updated}

	client, clientErr := u.clientRepo.GetByID(ctx, updated.ClientID)
	if clientErr != nil || client.ID == "" {
		result.Warnings = append(result.Warnings, "client record unavailable; email will be skipped")
	}

	// Stage 3: inspection PDF. Failure is reported, never rolled back.
	if updated.Inspection == nil {
		result.Warnings = append(result.Warnings, "no inspection submitted; PDF generation skipped")
	} else {
		pdfBytes, pdfErr := u.pdf.Generate(ctx, updated, client, *updated.Inspection, onProgress)
		if pdfErr != nil {
			log.Printf("[start][usecase] pdf generation failed service_id=%s err=%v", serviceID, pdfErr)
			result.Warnings = append(result.Warnings, fmt.Sprintf("PDF generation failed: %v", pdfErr))
		} else {
			result.PDF = pdfBytes
			result.PDFFileName = fmt.Sprintf("inspeccion-%d.pdf", updated.Folio)
		}
	}

	// Stage 4: email dispatch. Warn-only; the PDF stays available for
	// manual download.
	switch {
	case result.PDF == nil:
	case u.email == nil:
		result.Warnings = append(result.Warnings, "email gateway not configured; report not sent")
	case client.Email == "":
		result.Warnings = append(result.Warnings, "client has no email address; report not sent")
	default:
		mailErr := u.email.SendInspectionEmail(ctx, interfaces.InspectionEmailInput{
			To:           client.Email,
			ClientName:   client.Name,
			ServiceFolio: updated.Folio,
			ServiceDate:  updated.ServiceDate,
			PDF:          result.PDF,
			PDFFileName:  result.PDFFileName,
		})
		if mailErr != nil {
			log.Printf("[start][usecase] email dispatch failed service_id=%s err=%v", serviceID, mailErr)
			result.Warnings = append(result.Warnings, "report email could not be sent; download remains available")
		}
	}

	log.Printf("[start][usecase] start flow done service_id=%s warnings=%d", serviceID, len(result.Warnings))
	return result, nil
}
