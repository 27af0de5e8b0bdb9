package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsenceRepository_UpdateIsCompareAndSet(t *testing.T) {
	ctx := context.Background()
	repo := NewAbsenceRepository()

	created, err := repo.Create(ctx, absence.Absence{PostID: "P1", GuardID: "V1", Status: absence.StatusPending})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sub := string(rune('A' + n))
			_, err := repo.Update(ctx, created.ID, absence.RequirePending(func(a *absence.Absence) error {
				a.Status = absence.StatusCovered
				a.SubstituteID = &sub
				return nil
			}))
			if err == nil {
				atomic.AddInt32(&wins, 1)
			} else {
				assert.ErrorIs(t, err, absence.ErrAbsenceNotPending)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins)
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, absence.StatusCovered, stored.Status)
	require.NotNil(t, stored.SubstituteID)
}

func TestAbsenceRepository_FailedUpdateLeavesRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewAbsenceRepository()
	created, err := repo.Create(ctx, absence.Absence{ID: "F1", Status: absence.StatusUncovered})
	require.NoError(t, err)

	_, err = repo.Update(ctx, created.ID, absence.RequirePending(func(a *absence.Absence) error {
		a.Status = absence.StatusCovered
		return nil
	}))
	assert.ErrorIs(t, err, absence.ErrAbsenceNotPending)

	stored, err := repo.GetByID(ctx, "F1")
	require.NoError(t, err)
	assert.Equal(t, absence.StatusUncovered, stored.Status)
}

func TestAbsenceRepository_NotFound(t *testing.T) {
	repo := NewAbsenceRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)

	_, err = repo.Update(context.Background(), "missing", func(a *absence.Absence) error { return nil })
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestAbsenceRepository_ListFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewAbsenceRepository()
	for _, a := range []absence.Absence{
		{ID: "F1", PostID: "P1", Status: absence.StatusPending},
		{ID: "F2", PostID: "P2", Status: absence.StatusCovered},
		{ID: "F3", PostID: "P1", Status: absence.StatusPending},
	} {
		_, err := repo.Create(ctx, a)
		require.NoError(t, err)
	}

	pending := absence.StatusPending
	got, err := repo.List(ctx, absence.AbsenceFilter{Status: &pending})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "F1", got[0].ID)
	assert.Equal(t, "F3", got[1].ID)

	p2 := "P2"
	got, err = repo.List(ctx, absence.AbsenceFilter{PostID: &p2})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "F2", got[0].ID)
}
