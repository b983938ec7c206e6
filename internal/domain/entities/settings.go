package entities

import "time"

// Settings is the single company-wide configuration row.
//
// Storage model (DynamoDB):
//   - PK: id (fixed value "settings")
//
// MaxPhotosPerSet bounds how many photos an inspection photo set may carry;
// it is a validation rule, not a storage limit.
type Settings struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	CompanyRUT      string    `json:"company_rut"`
	EmailFrom       string    `json:"email_from"`
	LogoDataURL     string    `json:"logo_data_url,omitempty"`
	MaxPhotosPerSet int       `json:"max_photos_per_set"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultMaxPhotosPerSet applies when settings have never been saved.
const DefaultMaxPhotosPerSet = 6

// SettingsID is the fixed primary key of the singleton settings row.
const SettingsID = "settings"
