package entities

import "time"

// Operator is a crane operator who performs inspections and services.
//
// Storage model (DynamoDB):
//   - PK: id
type Operator struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RUT           string    `json:"rut"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
