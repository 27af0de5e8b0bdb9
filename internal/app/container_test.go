package app

import (
	"context"
	"testing"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_Seeded(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, settings.DefaultConfig(), true, time.Now().UTC())
	require.NoError(t, err)

	guards, err := c.Services.Guard.List(ctx, guard.GuardFilter{})
	require.NoError(t, err)
	assert.Len(t, guards, 5)

	ranking, err := c.Services.Dispatch.RankForAbsence(ctx, "F1", 1)
	require.NoError(t, err)
	require.Len(t, ranking.Candidates, 1)
	assert.Equal(t, "V4", ranking.Candidates[0].GuardID)

	summary, err := c.Services.Equipment.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Total)

	watch, err := c.Services.Shift.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "SVP RICARDO M.", watch.Supervisor)
}

func TestNewContainer_Empty(t *testing.T) {
	ctx := context.Background()
	c, err := NewContainer(ctx, settings.DefaultConfig(), false, time.Now().UTC())
	require.NoError(t, err)

	guards, err := c.Services.Guard.List(ctx, guard.GuardFilter{})
	require.NoError(t, err)
	assert.Empty(t, guards)

	cfg, err := c.Services.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80.0, cfg.MaxTravelMinutes)
}
