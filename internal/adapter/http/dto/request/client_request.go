package request

import (
	"strings"

	"tms_gruas/internal/domain/entities"
)

// ClientRequest is the payload for creating or updating a client.
type ClientRequest struct {
	Name    string `json:"name" binding:"required"`
	RUT     string `json:"rut" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    strings.TrimSpace(r.Name),
		RUT:     strings.TrimSpace(r.RUT),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}
