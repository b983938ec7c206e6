package entities

import "time"

// ServiceStatus represents the lifecycle of a crane service.
//
// Domain notes:
//   - pending -> in_progress is one-way and driven by the operator starting
//     physical work; it is never rolled back by downstream failures.
//   - completed services become eligible for closures (batch pre-invoicing).

type ServiceStatus string

const (
	ServiceStatusPending    ServiceStatus = "pending"
	ServiceStatusInProgress ServiceStatus = "in_progress"
	ServiceStatusCompleted  ServiceStatus = "completed"
	ServiceStatusCancelled  ServiceStatus = "cancelled"
)

func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusPending, ServiceStatusInProgress, ServiceStatusCompleted, ServiceStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed.
func (s ServiceStatus) CanTransitionTo(target ServiceStatus) bool {
	switch s {
	case ServiceStatusPending:
		return target == ServiceStatusInProgress || target == ServiceStatusCancelled
	case ServiceStatusInProgress:
		return target == ServiceStatusCompleted || target == ServiceStatusCancelled
	default:
		return false
	}
}

// Service is a crane dispatch job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Folio is the human-readable sequential reference assigned at creation.
type Service struct {
	ID          string          `json:"id"`
	Folio       int64           `json:"folio"`
	ClientID    string          `json:"client_id"`
	CraneID     string          `json:"crane_id"`
	OperatorID  string          `json:"operator_id"`
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	ServiceDate time.Time       `json:"service_date"`
	Value       float64         `json:"value"`
	Status      ServiceStatus   `json:"status"`
	ClosureID   string          `json:"closure_id,omitempty"`
	Inspection  *InspectionForm `json:"inspection,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
