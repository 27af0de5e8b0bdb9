package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/dashboard"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
	"github.com/srad-secure/srad-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC)

type testEnv struct {
	svc        dashboard.DashboardService
	guards     guard.GuardRepository
	absences   absence.AbsenceRepository
	incidents  incident.IncidentRepository
	exceptions exception.ExceptionRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	repos := fixtures.Repositories{
		Guards:   memory.NewGuardRepository(),
		Posts:    memory.NewPostRepository(),
		Absences: memory.NewAbsenceRepository(),
	}
	require.NoError(t, fixtures.Seed(context.Background(), repos, seededAt))

	incidents := memory.NewIncidentRepository()
	exceptions := memory.NewExceptionRepository()
	return testEnv{
		svc:        NewDashboardService(repos.Guards, repos.Posts, repos.Absences, incidents, exceptions),
		guards:     repos.Guards,
		absences:   repos.Absences,
		incidents:  incidents,
		exceptions: exceptions,
	}
}

func (e testEnv) moveGuard(t *testing.T, id, postID string, state guard.CheckInState) {
	t.Helper()
	g, err := e.guards.GetByID(context.Background(), id)
	require.NoError(t, err)
	g.CurrentPostID = &postID
	g.CheckIn = state
	_, err = e.guards.Update(context.Background(), id, func(s *guard.Guard) error { *s = g; return nil })
	require.NoError(t, err)
}

func TestReadiness_Seeded(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.svc.Readiness(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resp.PendingAbsences)
	assert.Equal(t, 85, resp.Score)
	assert.Equal(t, dashboard.ReadinessAttention, resp.Label)
	assert.Equal(t, 4, resp.ActiveGuards)
	assert.Equal(t, 2, resp.ActivePosts)
}

func TestReadiness_AllPenalties(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.incidents.Create(ctx, incident.Incident{ID: "I1", Kind: incident.KindThreat, PostID: "P1", Status: incident.StatusOpen})
	require.NoError(t, err)
	_, err = env.incidents.Create(ctx, incident.Incident{ID: "I2", Kind: incident.KindPolice, PostID: "P2", Status: incident.StatusClosed})
	require.NoError(t, err)
	_, err = env.incidents.Create(ctx, incident.Incident{ID: "I3", Kind: incident.KindIntrusion, PostID: "P2", Status: incident.StatusInProgress})
	require.NoError(t, err)

	env.moveGuard(t, "V2", "P2", guard.CheckInOutside)

	v3, err := env.guards.GetByID(ctx, "V3")
	require.NoError(t, err)
	v3.Documents[0].Status = guard.DocumentExpired
	_, err = env.guards.Update(ctx, "V3", func(s *guard.Guard) error { *s = v3; return nil })
	require.NoError(t, err)

	resp, err := env.svc.Readiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.OpenIncidents)
	assert.Equal(t, 1, resp.OutsideGeofence)
	assert.Equal(t, 1, resp.ExpiredDocuments)
	// 100 - 15 - 40 - 10 - 5
	assert.Equal(t, 30, resp.Score)
	assert.Equal(t, dashboard.ReadinessCritical, resp.Label)
}

func TestReadiness_FloorsAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := env.incidents.Create(ctx, incident.Incident{Kind: incident.KindThreat, PostID: "P1", Status: incident.StatusOpen})
		require.NoError(t, err)
	}

	resp, err := env.svc.Readiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Score)
}

func TestOperationalMap(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// V2 is not authorized for Taguatinga; V4 is covered by an approved
	// exception that was already spent on this assignment.
	env.moveGuard(t, "V2", "P2", guard.CheckInInside)
	env.moveGuard(t, "V4", "P2", guard.CheckInOutside)
	consumedAt := seededAt
	_, err := env.exceptions.Create(ctx, exception.RegionalException{
		ID: "E1", GuardID: "V4", PostID: "P2", Status: exception.StatusApproved, ConsumedAt: &consumedAt,
	})
	require.NoError(t, err)
	_, err = env.exceptions.Create(ctx, exception.RegionalException{
		ID: "E2", GuardID: "V2", PostID: "P2", Status: exception.StatusRejected,
	})
	require.NoError(t, err)

	resp, err := env.svc.OperationalMap(ctx)
	require.NoError(t, err)
	require.Len(t, resp, 2)

	p1 := resp[0]
	assert.Equal(t, "P1", p1.PostID)
	assert.Equal(t, []string{"V1"}, p1.GuardIDs)
	assert.False(t, p1.Abandonment)
	assert.False(t, p1.CARViolation)

	p2 := resp[1]
	assert.Equal(t, "P2", p2.PostID)
	assert.Equal(t, region.Taguatinga, p2.Region)
	assert.Equal(t, []string{"V2", "V4"}, p2.GuardIDs)
	assert.True(t, p2.Abandonment)
	assert.True(t, p2.CARViolation)
	assert.Equal(t, []string{"V2"}, p2.ViolatorIDs)
}

func TestSimulate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Every seeded guard, including V5 on vacation, is authorized for Plano Piloto.
	resp, err := env.svc.Simulate(ctx, dashboard.SimulationRequest{Region: region.PlanoPiloto, NewPosts: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Pool)
	assert.Equal(t, 4, resp.Needed)
	assert.InDelta(t, 1.25, resp.Ratio, 1e-9)
	assert.Equal(t, 1, resp.Balance)
	assert.True(t, resp.Viable)

	resp, err = env.svc.Simulate(ctx, dashboard.SimulationRequest{Region: region.Taguatinga, NewPosts: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Pool)
	assert.Equal(t, -2, resp.Balance)
	assert.False(t, resp.Viable)

	_, err = env.svc.Simulate(ctx, dashboard.SimulationRequest{Region: region.Taguatinga})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "new_posts")
}
