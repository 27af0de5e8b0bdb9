package audit

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
	"github.com/srad-secure/srad-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*AuditServiceImpl, *sse.Hub) {
	hub := sse.NewHub()
	svc := NewAuditService(memory.NewAuditRepository(), hub).(*AuditServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	return svc, hub
}

func contextWithOperator(t *testing.T, name string, role auth.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"name": name, "role": string(role), "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestRecord_SerializesValuesAndUsesSessionActor(t *testing.T) {
	svc, _ := newTestService()
	ctx := contextWithOperator(t, "SVP Regional Alpha", auth.RoleSupervisor)

	entry, err := svc.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionAbsenceCovered,
		EntityType: audit.EntityAbsence,
		EntityID:   "F1",
		Previous:   "PENDING",
		New:        map[string]string{"status": "COVERED", "substitute_id": "V2"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, audit.Actor{Name: "SVP Regional Alpha", Role: auth.RoleSupervisor}, entry.Actor)
	require.NotNil(t, entry.Previous)
	assert.Equal(t, `"PENDING"`, *entry.Previous)
	require.NotNil(t, entry.New)
	assert.JSONEq(t, `{"status":"COVERED","substitute_id":"V2"}`, *entry.New)
	assert.Equal(t, time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC), entry.Timestamp)

	listed, err := svc.List(context.Background(), audit.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, entry.ID, listed[0].ID)
}

func TestRecord_WithoutSessionUsesSystemActor(t *testing.T) {
	svc, _ := newTestService()

	entry, err := svc.Record(context.Background(), audit.RecordRequest{
		Action:     audit.ActionSLABreach,
		EntityType: audit.EntityAbsence,
		EntityID:   "F1",
	})
	require.NoError(t, err)

	assert.Equal(t, audit.SystemActor, entry.Actor)
	assert.Nil(t, entry.Previous)
	assert.Nil(t, entry.New)
}

func TestRecord_RejectsUnknownCodes(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Record(context.Background(), audit.RecordRequest{Action: "DELETE_EVERYTHING", EntityType: audit.EntityGuard})
	assert.ErrorIs(t, err, audit.ErrUnknownAction)

	_, err = svc.Record(context.Background(), audit.RecordRequest{Action: audit.ActionGuardAdmitted, EntityType: "SPACESHIP"})
	assert.ErrorIs(t, err, audit.ErrUnknownEntityType)

	listed, err := svc.List(context.Background(), audit.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestRecord_PublishesToFeed(t *testing.T) {
	svc, _ := newTestService()
	ch, cleanup := svc.Subscribe(context.Background())
	defer cleanup()

	_, err := svc.RecordAs(context.Background(), audit.Actor{Name: "RH Mariana", Role: auth.RoleHR}, audit.RecordRequest{
		Action:     audit.ActionGuardAdmitted,
		EntityType: audit.EntityGuard,
		EntityID:   "V9",
	})
	require.NoError(t, err)

	select {
	case ev := <-ch:
		assert.Equal(t, FeedTopic, ev.Topic)
		assert.Equal(t, FeedEvent, ev.Event)
		resp, ok := ev.Data.(audit.EntryResponse)
		require.True(t, ok)
		assert.Equal(t, "V9", resp.EntityID)
		assert.Equal(t, "RH Mariana", resp.ActorName)
	case <-time.After(time.Second):
		t.Fatal("expected a feed event")
	}
}
