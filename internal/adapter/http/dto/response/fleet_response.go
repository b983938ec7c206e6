package response

import (
	"time"

	"tms_gruas/internal/domain/entities"
)

type CraneResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Model       string    `json:"model,omitempty"`
	PlateNumber string    `json:"plate_number"`
	CapacityTon float64   `json:"capacity_ton,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCrane(c entities.Crane) CraneResponse {
	return CraneResponse{
		ID:          c.ID,
		Name:        c.Name,
		Brand:       c.Brand,
		Model:       c.Model,
		PlateNumber: c.PlateNumber,
		CapacityTon: c.CapacityTon,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCranes(cranes []entities.Crane) []CraneResponse {
	out := make([]CraneResponse, 0, len(cranes))
	for _, c := range cranes {
		out = append(out, FromCrane(c))
	}
	return out
}

type OperatorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RUT           string    `json:"rut"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOperator(o entities.Operator) OperatorResponse {
	return OperatorResponse{
		ID:            o.ID,
		Name:          o.Name,
		RUT:           o.RUT,
		Email:         o.Email,
		Phone:         o.Phone,
		LicenseNumber: o.LicenseNumber,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOperators(operators []entities.Operator) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(operators))
	for _, o := range operators {
		out = append(out, FromOperator(o))
	}
	return out
}
