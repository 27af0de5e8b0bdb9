package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
	audit audit.AuditService
}

func NewSettingsService(repo settings.SettingsRepository, auditService audit.AuditService) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: repo,
		audit:              auditService,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.Config, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	return cfg, nil
}

// UpdateParameter implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateParameter(ctx context.Context, req settings.UpdateParameterRequest) (settings.ParameterResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.ParameterResponse{}, err
	}
	if !req.Key.Valid() {
		return settings.ParameterResponse{}, settings.ErrUnknownParameter
	}

	prev, next, err := s.SettingsRepository.Update(ctx, func(c *settings.Config) error {
		return c.Set(req.Key, req.Value)
	})
	if err != nil {
		return settings.ParameterResponse{}, err
	}

	previous, _ := prev.Value(req.Key)
	value, _ := next.Value(req.Key)

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionParamUpdate,
		EntityType: audit.EntityConfiguration,
		EntityID:   string(req.Key),
		Previous:   previous,
		New:        value,
	}); err != nil {
		return settings.ParameterResponse{}, err
	}

	slog.Info("Configuration parameter updated", "key", req.Key, "previous", previous, "value", value)

	return settings.ParameterResponse{Key: req.Key, Previous: previous, Value: value}, nil
}
