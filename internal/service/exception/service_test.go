package exception

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
	"github.com/srad-secure/srad-backend-go/internal/repository/memory"
	auditService "github.com/srad-secure/srad-backend-go/internal/service/audit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*ExceptionServiceImpl, audit.AuditService) {
	t.Helper()
	repos := fixtures.Repositories{
		Guards:   memory.NewGuardRepository(),
		Posts:    memory.NewPostRepository(),
		Absences: memory.NewAbsenceRepository(),
	}
	require.NoError(t, fixtures.Seed(context.Background(), repos, testNow))

	audits := auditService.NewAuditService(memory.NewAuditRepository(), sse.NewHub())
	svc := NewExceptionService(memory.NewExceptionRepository(), repos.Guards, repos.Posts, audits).(*ExceptionServiceImpl)
	svc.now = func() time.Time { return testNow }
	return svc, audits
}

func sessionContext(t *testing.T, name string, role auth.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"name": name, "role": string(role), "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRequest(t *testing.T) {
	svc, audits := newTestService(t)
	ctx := sessionContext(t, "SVP Regional Alpha", auth.RoleSupervisor)

	resp, err := svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P2", Reason: "reforço noturno"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, exception.StatusPending, resp.Status)
	assert.Equal(t, "SVP Regional Alpha", resp.RequestedBy)
	assert.Nil(t, resp.DecidedAt)

	entries, err := audits.List(context.Background(), audit.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionExceptionRequested, entries[0].Action)
	assert.Equal(t, "SVP Regional Alpha", entries[0].ActorName)
}

func TestRequest_Errors(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V1", PostID: "P2", Reason: "x"})
	assert.ErrorIs(t, err, exception.ErrAlreadyAuthorized)

	_, err = svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V404", PostID: "P2", Reason: "x"})
	assert.ErrorIs(t, err, guard.ErrGuardNotFound)

	_, err = svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P404", Reason: "x"})
	assert.ErrorIs(t, err, post.ErrPostNotFound)

	_, err = svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P2"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "reason")
}

func TestDecide(t *testing.T) {
	svc, audits := newTestService(t)
	ctx := sessionContext(t, "Admin Master", auth.RoleAdmin)

	requested, err := svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P2", Reason: "reforço"})
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, exception.DecideExceptionRequest{ID: requested.ID, Decision: exception.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, exception.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "Admin Master", *decided.DecidedBy)
	assert.Equal(t, testNow, *decided.DecidedAt)
	assert.Nil(t, decided.ConsumedAt)

	_, err = svc.Decide(ctx, exception.DecideExceptionRequest{ID: requested.ID, Decision: exception.StatusRejected})
	assert.ErrorIs(t, err, exception.ErrAlreadyDecided)

	_, err = svc.Decide(ctx, exception.DecideExceptionRequest{ID: "missing", Decision: exception.StatusRejected})
	assert.ErrorIs(t, err, exception.ErrExceptionNotFound)

	_, err = svc.Decide(ctx, exception.DecideExceptionRequest{ID: requested.ID, Decision: exception.StatusPending})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	decidedAction := audit.ActionExceptionDecided
	entries, err := audits.List(context.Background(), audit.EntryFilter{Action: &decidedAction})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `"APPROVED"`, *entries[0].New)
}

func TestDecide_ConcurrentDecisionsApplyOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	requested, err := svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P2", Reason: "x"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 8; i++ {
		decision := exception.StatusApproved
		if i%2 == 1 {
			decision = exception.StatusRejected
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Decide(ctx, exception.DecideExceptionRequest{ID: requested.ID, Decision: decision}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestList_Filters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V2", PostID: "P2", Reason: "a"})
	require.NoError(t, err)
	_, err = svc.Request(ctx, exception.RequestExceptionRequest{GuardID: "V4", PostID: "P2", Reason: "b"})
	require.NoError(t, err)
	_, err = svc.Decide(ctx, exception.DecideExceptionRequest{ID: first.ID, Decision: exception.StatusApproved})
	require.NoError(t, err)

	approved := exception.StatusApproved
	list, err := svc.List(ctx, exception.ExceptionFilter{Status: &approved})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "V2", list[0].GuardID)

	guardID := "V4"
	list, err = svc.List(ctx, exception.ExceptionFilter{GuardID: &guardID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, exception.StatusPending, list[0].Status)
}
