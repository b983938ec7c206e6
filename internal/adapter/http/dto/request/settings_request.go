package request

import (
	"strings"

	"tms_gruas/internal/domain/entities"
)

// SettingsRequest is the payload for saving company settings. The logo is
// managed through its own upload endpoint and preserved on save.
type SettingsRequest struct {
	CompanyName     string `json:"company_name"`
	CompanyRUT      string `json:"company_rut"`
	EmailFrom       string `json:"email_from"`
	MaxPhotosPerSet int    `json:"max_photos_per_set"`
}

func (r SettingsRequest) ToEntity() entities.Settings {
	return entities.Settings{
		CompanyName:     strings.TrimSpace(r.CompanyName),
		CompanyRUT:      strings.TrimSpace(r.CompanyRUT),
		EmailFrom:       strings.TrimSpace(r.EmailFrom),
		MaxPhotosPerSet: r.MaxPhotosPerSet,
	}
}
