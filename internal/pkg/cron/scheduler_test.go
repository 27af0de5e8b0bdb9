package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_RunByName(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	s.AddJob("a", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	require.NoError(t, s.Run(context.Background(), "a"))
	assert.Equal(t, int32(1), runs.Load())

	err := s.Run(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownJob)
	assert.Equal(t, []string{"a"}, s.Jobs())
}

func TestScheduler_RunOnceJoinsErrors(t *testing.T) {
	s := NewScheduler()
	boom := errors.New("boom")
	var ran atomic.Int32
	s.AddJob("fails", time.Hour, func(ctx context.Context) error { return boom })
	s.AddJob("works", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	err := s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fails")
	assert.Equal(t, int32(1), ran.Load())
}

type stubGuardService struct {
	guard.GuardService
	calls  int
	result guard.ComplianceSweepResult
	err    error
}

func (s *stubGuardService) EnforceDocumentCompliance(ctx context.Context) (guard.ComplianceSweepResult, error) {
	s.calls++
	return s.result, s.err
}

type stubAbsenceService struct {
	absence.AbsenceService
	calls  int
	result absence.SLASweepResult
}

func (s *stubAbsenceService) FlagSLABreaches(ctx context.Context) (absence.SLASweepResult, error) {
	s.calls++
	return s.result, nil
}

func TestOperationsJobs_Register(t *testing.T) {
	guards := &stubGuardService{result: guard.ComplianceSweepResult{Checked: 3, Expired: 1, Blocked: []string{"V1"}}}
	absences := &stubAbsenceService{result: absence.SLASweepResult{Pending: 1, Breached: []string{"F1"}}}

	s := NewScheduler()
	NewOperationsJobs(guards, absences).RegisterJobs(s, time.Hour, time.Minute)
	assert.Equal(t, []string{JobDocumentCompliance, JobAbsenceSLA}, s.Jobs())

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, 1, guards.calls)
	assert.Equal(t, 1, absences.calls)

	require.NoError(t, s.Run(context.Background(), JobAbsenceSLA))
	assert.Equal(t, 2, absences.calls)
}

func TestOperationsJobs_PropagatesErrors(t *testing.T) {
	boom := errors.New("roster unavailable")
	jobs := NewOperationsJobs(&stubGuardService{err: boom}, &stubAbsenceService{})

	err := jobs.EnforceDocumentCompliance(context.Background())
	assert.ErrorIs(t, err, boom)
}
