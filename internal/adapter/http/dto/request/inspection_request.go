package request

import (
	"tms_gruas/internal/domain/entities"
)

// InspectionPhotoRequest mirrors a processed photo attached client-side.
type InspectionPhotoRequest struct {
	Name    string `json:"name"`
	DataURL string `json:"data_url" binding:"required"`
}

// InspectionFormRequest is the submit payload of the pre-service inspection.
type InspectionFormRequest struct {
	EquipmentChecked    []string                            `json:"equipment_checked"`
	VehicleObservations string                              `json:"vehicle_observations"`
	OperatorSignature   string                              `json:"operator_signature"`
	ClientSignature     string                              `json:"client_signature"`
	ClientName          string                              `json:"client_name"`
	ClientRUT           string                              `json:"client_rut"`
	PhotoSets           map[string][]InspectionPhotoRequest `json:"photo_sets"`
}

func (r InspectionFormRequest) ToEntity() entities.InspectionForm {
	form := entities.InspectionForm{
		EquipmentChecked:    r.EquipmentChecked,
		VehicleObservations: r.VehicleObservations,
		OperatorSignature:   entities.SignatureData(r.OperatorSignature),
		ClientSignature:     entities.SignatureData(r.ClientSignature),
		ClientName:          r.ClientName,
		ClientRUT:           r.ClientRUT,
	}
	if len(r.PhotoSets) > 0 {
		form.PhotoSets = make(map[string][]entities.PhotoData, len(r.PhotoSets))
		for set, photos := range r.PhotoSets {
			converted := make([]entities.PhotoData, 0, len(photos))
			for _, p := range photos {
				converted = append(converted, entities.PhotoData{Name: p.Name, DataURL: p.DataURL})
			}
			form.PhotoSets[set] = converted
		}
	}
	return form
}
