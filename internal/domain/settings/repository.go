package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context) (Config, error)

	// Update applies fn to the stored config atomically and returns the
	// previous and new values.
	Update(ctx context.Context, fn func(c *Config) error) (prev Config, next Config, err error)
}
