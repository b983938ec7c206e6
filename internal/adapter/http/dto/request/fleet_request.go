package request

import (
	"strings"

	"tms_gruas/internal/domain/entities"
)

// CraneRequest is the payload for creating or updating a crane.
type CraneRequest struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	PlateNumber string  `json:"plate_number" binding:"required"`
	CapacityTon float64 `json:"capacity_ton"`
}

func (r CraneRequest) ToEntity() entities.Crane {
	return entities.Crane{
		Name:        strings.TrimSpace(r.Name),
		Brand:       strings.TrimSpace(r.Brand),
		Model:       strings.TrimSpace(r.Model),
		PlateNumber: strings.TrimSpace(r.PlateNumber),
		CapacityTon: r.CapacityTon,
	}
}

// OperatorRequest is the payload for creating or updating an operator.
type OperatorRequest struct {
	Name          string `json:"name" binding:"required"`
	RUT           string `json:"rut" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

func (r OperatorRequest) ToEntity() entities.Operator {
	return entities.Operator{
		Name:          strings.TrimSpace(r.Name),
		RUT:           strings.TrimSpace(r.RUT),
		Email:         strings.TrimSpace(r.Email),
		Phone:         strings.TrimSpace(r.Phone),
		LicenseNumber: strings.TrimSpace(r.LicenseNumber),
	}
}
