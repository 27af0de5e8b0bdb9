package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGuards(t *testing.T, repo guard.GuardRepository) {
	t.Helper()
	for _, g := range []guard.Guard{
		{ID: "V1", Name: "JOÃO SILVA (ALPHA)", Registration: "1001", CPF: "12345678901", Crew: guard.CrewEven, Status: guard.StatusActive, AuthorizedRegions: []region.Region{region.PlanoPiloto}},
		{ID: "V2", Name: "MARIA SOUZA", Registration: "1002", CPF: "98765432100", Crew: guard.CrewOdd, Status: guard.StatusActive, AuthorizedRegions: []region.Region{region.PlanoPiloto}},
		{ID: "V3", Name: "CARLOS LIMA", Registration: "1003", CPF: "11122233344", Crew: guard.CrewOdd, Status: guard.StatusBlocked, AuthorizedRegions: []region.Region{region.PlanoPiloto}},
	} {
		_, err := repo.Create(context.Background(), g)
		require.NoError(t, err)
	}
}

func TestGuardRepository_CreateRejectsDuplicates(t *testing.T) {
	repo := NewGuardRepository()
	seedGuards(t, repo)

	_, err := repo.Create(context.Background(), guard.Guard{Name: "X", Registration: "9999", CPF: "12345678901"})
	assert.ErrorIs(t, err, guard.ErrCPFExists)

	_, err = repo.Create(context.Background(), guard.Guard{Name: "X", Registration: "1002", CPF: "55555555555"})
	assert.ErrorIs(t, err, guard.ErrRegistrationExists)

	exists, err := repo.ExistsByCPF(context.Background(), "98765432100")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByRegistration(context.Background(), "4242")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGuardRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := NewGuardRepository()
	seedGuards(t, repo)

	all, err := repo.List(ctx, guard.GuardFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "V1", all[0].ID)
	assert.Equal(t, "V3", all[2].ID)

	odd := guard.CrewOdd
	active := guard.StatusActive
	got, err := repo.List(ctx, guard.GuardFilter{Crew: &odd, Status: &active})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "V2", got[0].ID)

	for query, want := range map[string]string{
		"maria":          "V2",
		"1003":           "V3",
		"123.456.789-01": "V1",
	} {
		q := query
		got, err := repo.List(ctx, guard.GuardFilter{Query: &q})
		require.NoError(t, err)
		require.Len(t, got, 1, query)
		assert.Equal(t, want, got[0].ID, query)
	}
}

func TestGuardRepository_Snapshots(t *testing.T) {
	ctx := context.Background()
	repo := NewGuardRepository()
	seedGuards(t, repo)

	g, err := repo.GetByID(ctx, "V1")
	require.NoError(t, err)
	g.AuthorizedRegions[0] = region.Gama
	g.Name = "CHANGED"

	stored, err := repo.GetByID(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, region.PlanoPiloto, stored.AuthorizedRegions[0])
	assert.Equal(t, "JOÃO SILVA (ALPHA)", stored.Name)

	updated, err := repo.Update(ctx, "V1", func(g *guard.Guard) error {
		g.Name = "CHANGED"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "CHANGED", updated.Name)
	stored, err = repo.GetByID(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, "CHANGED", stored.Name)

	_, err = repo.Update(ctx, "missing", func(g *guard.Guard) error { return nil })
	assert.ErrorIs(t, err, guard.ErrGuardNotFound)
}

func TestGuardRepository_UpdateRejectedLeavesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewGuardRepository()
	seedGuards(t, repo)

	errStop := errors.New("stop")
	got, err := repo.Update(ctx, "V1", func(g *guard.Guard) error {
		g.Status = guard.StatusBlocked
		return errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, guard.StatusActive, got.Status)

	stored, err := repo.GetByID(ctx, "V1")
	require.NoError(t, err)
	assert.Equal(t, guard.StatusActive, stored.Status)
}
