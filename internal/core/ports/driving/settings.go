package driving

import "github.com/inklight-labs/inklight-cli/internal/core/domain"

// SettingsService manages engine settings persistence.
type SettingsService interface {
	// Get retrieves current engine settings, with defaults applied for
	// any key missing from the store.
	Get() (*domain.EngineSettings, error)

	// Save validates and persists engine settings.
	Save(settings *domain.EngineSettings) error
}
