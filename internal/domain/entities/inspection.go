package entities

import (
	"strings"
	"time"
)

// SignatureData is a data-URL encoded signature image captured on a canvas.
// An empty capture (no strokes) serializes to an empty string, so emptiness
// is decided on the payload, not on the canvas element.
type SignatureData string

func (s SignatureData) IsEmpty() bool {
	return strings.TrimSpace(string(s)) == ""
}

// PhotoData is a processed (downscaled, re-encoded) photo attached to an
// inspection. Name is unique per photo and derived from a prefix, timestamp
// and random suffix.
type PhotoData struct {
	Name    string `json:"name"`
	DataURL string `json:"data_url"`
}

// InspectionForm is the pre-service checklist, photo and signature capture an
// operator fills out before starting work. It lives embedded on the Service
// row once submitted; while in progress it only exists as a local draft.
//
// Submit invariants (enforced by the inspection use case, all failures
// collected and reported together):
//   - EquipmentChecked must be non-empty
//   - OperatorSignature must be non-empty
//   - at least one photo must exist across all photo sets
type InspectionForm struct {
	EquipmentChecked    []string               `json:"equipment_checked"`
	VehicleObservations string                 `json:"vehicle_observations,omitempty"`
	OperatorSignature   SignatureData          `json:"operator_signature"`
	ClientSignature     SignatureData          `json:"client_signature,omitempty"`
	ClientName          string                 `json:"client_name,omitempty"`
	ClientRUT           string                 `json:"client_rut,omitempty"`
	PhotoSets           map[string][]PhotoData `json:"photo_sets,omitempty"`
	CompletedAt         time.Time              `json:"completed_at,omitempty"`
}

// PhotoCount returns the number of photos across all photo sets.
func (f InspectionForm) PhotoCount() int {
	n := 0
	for _, set := range f.PhotoSets {
		n += len(set)
	}
	return n
}
