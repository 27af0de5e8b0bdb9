package settings

import "context"

type SettingsService interface {
	Get(ctx context.Context) (Config, error)

	// UpdateParameter changes one tunable and audits the previous and new value.
	UpdateParameter(ctx context.Context, req UpdateParameterRequest) (ParameterResponse, error)
}
