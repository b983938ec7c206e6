package response

import (
	"time"

	"tms_gruas/internal/domain/entities"
)

type SettingsResponse struct {
	CompanyName     string    `json:"company_name"`
	CompanyRUT      string    `json:"company_rut"`
	EmailFrom       string    `json:"email_from"`
	LogoDataURL     string    `json:"logo_data_url,omitempty"`
	MaxPhotosPerSet int       `json:"max_photos_per_set"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromSettings(s entities.Settings) SettingsResponse {
	return SettingsResponse{
		CompanyName:     s.CompanyName,
		CompanyRUT:      s.CompanyRUT,
		EmailFrom:       s.EmailFrom,
		LogoDataURL:     s.LogoDataURL,
		MaxPhotosPerSet: s.MaxPhotosPerSet,
		UpdatedAt:       s.UpdatedAt,
	}
}

// PhotoResponse is the processed photo payload returned by upload endpoints.
type PhotoResponse struct {
	Name    string `json:"name"`
	DataURL string `json:"data_url"`
}

func FromPhoto(p entities.PhotoData) PhotoResponse {
	return PhotoResponse{Name: p.Name, DataURL: p.DataURL}
}
