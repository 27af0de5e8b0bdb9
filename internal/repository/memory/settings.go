package memory

import (
	"context"
	"sync"

	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

type settingsRepository struct {
	mu  sync.RWMutex
	cfg settings.Config
}

// NewSettingsRepository creates a configuration store holding initial
func NewSettingsRepository(initial settings.Config) settings.SettingsRepository {
	return &settingsRepository{cfg: initial}
}

func (r *settingsRepository) Get(ctx context.Context) (settings.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cfg, nil
}

func (r *settingsRepository) Update(ctx context.Context, fn func(c *settings.Config) error) (settings.Config, settings.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.cfg
	next := r.cfg
	if err := fn(&next); err != nil {
		return prev, prev, err
	}
	r.cfg = next
	return prev, next, nil
}
