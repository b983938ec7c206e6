package interfaces

import (
	"context"

	"tms_gruas/internal/domain/entities"
)

// ProgressFunc receives pipeline progress before each stage's work begins.
// Stage labels are user-facing; percent is 0-100. On failure the generator
// reports the "error" stage through the same callback before returning.
type ProgressFunc func(percent int, stage string)

// IInspectionPDFGenerator renders the inspection report for a service.
//
// Generation is strictly sequential (data prep, photo embedding, rendering,
// finalizing); no partial document is ever returned.

type IInspectionPDFGenerator interface {
	Generate(ctx context.Context, svc entities.Service, client entities.Client, form entities.InspectionForm, onProgress ProgressFunc) ([]byte, error)
}
