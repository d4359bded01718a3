package model

import "time"

// DefaultCurrency is what the service falls back to before settings exist.
const DefaultCurrency = "USD"

// Settings is the service-wide singleton. AppName is only populated by
// deployments that customize the display name.
type Settings struct {
	UpdatedAt       time.Time `json:"updated_at"`
	ID              string    `json:"id"`
	DefaultCurrency string    `json:"default_currency"`
	AppName         string    `json:"app_name,omitempty"`
}

// SettingsUpdate is the partial shape PUT to /settings.
type SettingsUpdate struct {
	DefaultCurrency string `json:"default_currency"`
}
