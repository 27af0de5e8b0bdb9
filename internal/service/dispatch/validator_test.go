package dispatch

import (
	"testing"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/stretchr/testify/assert"
)

func TestValidateDispatch(t *testing.T) {
	g := g1()
	p := p1()
	outOfArea := testGuard("G2", guard.CrewOdd, region.Gama, region.SantaMaria)

	consumedAt := time.Now()
	exceptions := exception.NewSet([]exception.RegionalException{
		{ID: "E1", GuardID: "G2", PostID: "P1", Status: exception.StatusApproved},
		{ID: "E2", GuardID: "G3", PostID: "P1", Status: exception.StatusPending},
		{ID: "E3", GuardID: "G4", PostID: "P1", Status: exception.StatusApproved, ConsumedAt: &consumedAt},
		{ID: "E4", GuardID: "G5", PostID: "P9", Status: exception.StatusApproved},
	})

	tests := []struct {
		name       string
		guard      *guard.Guard
		exceptions exception.Lookup
		want       dispatch.Validation
	}{
		{
			name:  "authorized region",
			guard: &g,
			want:  dispatch.Validation{OK: true},
		},
		{
			name:  "region not authorized",
			guard: &outOfArea,
			want:  dispatch.Validation{Reason: dispatch.ReasonRegionNotAuthorized},
		},
		{
			name:       "approved exception for the pair",
			guard:      &outOfArea,
			exceptions: exceptions,
			want: dispatch.Validation{
				OK:          true,
				Reason:      dispatch.ReasonAuthorizedByException,
				ExceptionID: "E1",
			},
		},
		{
			name:       "authorized region wins over exception",
			guard:      &g,
			exceptions: exceptions,
			want:       dispatch.Validation{OK: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateDispatch(tt.guard, &p, tt.exceptions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDispatch_UnusableExceptions(t *testing.T) {
	p := p1()
	consumedAt := time.Now()
	exceptions := exception.NewSet([]exception.RegionalException{
		{ID: "E2", GuardID: "G3", PostID: "P1", Status: exception.StatusPending},
		{ID: "E3", GuardID: "G4", PostID: "P1", Status: exception.StatusApproved, ConsumedAt: &consumedAt},
		{ID: "E5", GuardID: "G6", PostID: "P1", Status: exception.StatusRejected},
		{ID: "E4", GuardID: "G5", PostID: "P9", Status: exception.StatusApproved},
	})

	for _, id := range []string{"G3", "G4", "G5", "G6"} {
		g := testGuard(id, guard.CrewOdd, region.Gama)
		v := ValidateDispatch(&g, &p, exceptions)
		assert.False(t, v.OK, id)
		assert.Equal(t, dispatch.ReasonRegionNotAuthorized, v.Reason, id)
		assert.Empty(t, v.ExceptionID, id)
	}
}

func TestValidateDispatch_InvalidInput(t *testing.T) {
	g := g1()
	p := p1()

	assert.Equal(t, dispatch.Validation{Reason: dispatch.ReasonInvalidInput}, ValidateDispatch(nil, &p, nil))
	assert.Equal(t, dispatch.Validation{Reason: dispatch.ReasonInvalidInput}, ValidateDispatch(&g, nil, nil))
	assert.Equal(t, dispatch.Validation{Reason: dispatch.ReasonInvalidInput}, ValidateDispatch(nil, nil, nil))
}

func TestValidation_Err(t *testing.T) {
	assert.NoError(t, dispatch.Validation{OK: true}.Err())
	assert.ErrorIs(t, dispatch.Validation{Reason: dispatch.ReasonRegionNotAuthorized}.Err(), dispatch.ErrRegionNotAuthorized)
	assert.ErrorIs(t, dispatch.Validation{Reason: dispatch.ReasonInvalidInput}.Err(), dispatch.ErrInvalidDispatchInput)
}
