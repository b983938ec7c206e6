package entities

import "time"

// Crane is a unit of the fleet.
//
// Storage model (DynamoDB):
//   - PK: id
type Crane struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Model       string    `json:"model,omitempty"`
	PlateNumber string    `json:"plate_number"`
	CapacityTon float64   `json:"capacity_ton,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
