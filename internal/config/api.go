package config

import (
	"github.com/spf13/viper"

	"github.com/budgielabs/budgie/internal/api"
)

// LoadAPIConfig builds the budget service client configuration from Viper.
// The base URL comes from the api.base_url key (or BUDGIE_API_BASE_URL);
// api.timeout is optional and defaults inside the client.
func LoadAPIConfig() api.Config {
	return api.Config{
		BaseURL: viper.GetString("api.base_url"),
		Timeout: viper.GetDuration("api.timeout"),
	}
}
