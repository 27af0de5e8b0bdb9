package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/app"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	"github.com/srad-secure/srad-backend-go/internal/pkg/cron"
	"github.com/srad-secure/srad-backend-go/internal/pkg/jwt"
	authService "github.com/srad-secure/srad-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret   = "test-secret-key-for-jwt"
	handlerTestPassword = "srad2026"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testAPI struct {
	t         *testing.T
	handler   http.Handler
	container *app.Container
	jwt       jwt.Service
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctx := context.Background()

	container, err := app.NewContainer(ctx, settings.DefaultConfig(), true, time.Now().UTC())
	require.NoError(t, err)

	directory, err := fixtures.NewOperatorDirectory(handlerTestPassword, bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(handlerTestSecret, "1h")
	svc := container.Services

	scheduler := cron.NewScheduler()
	cron.NewOperationsJobs(svc.Guard, svc.Absence).RegisterJobs(scheduler, time.Hour, time.Minute)

	router := NewRouter(RouterConfig{
		Env:            "test",
		Version:        "test",
		AllowedOrigins: []string{"http://localhost:3000"},
		LogLevel:       slog.LevelError,
	}, jwtService, Handlers{
		Auth:      NewAuthHandler(jwtService, authService.NewAuthService(directory, jwtService, svc.Audit)),
		Region:    NewRegionHandler(),
		Guard:     NewGuardHandler(svc.Guard, svc.Dispatch),
		Post:      NewPostHandler(svc.Post),
		Absence:   NewAbsenceHandler(svc.Absence, svc.Dispatch),
		Dispatch:  NewDispatchHandler(svc.Dispatch),
		Exception: NewExceptionHandler(svc.Exception),
		Incident:  NewIncidentHandler(svc.Incident),
		Equipment: NewEquipmentHandler(svc.Equipment),
		Shift:     NewShiftHandler(svc.Shift),
		Settings:  NewSettingsHandler(svc.Settings),
		Audit:     NewAuditHandler(svc.Audit, jwtService),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Jobs:      NewJobHandler(scheduler),
	})

	return &testAPI{t: t, handler: router, container: container, jwt: jwtService}
}

func (a *testAPI) token(role auth.Role) string {
	a.t.Helper()
	token, _, err := a.jwt.GenerateAccessToken("u-"+string(role), "Operador "+string(role), role)
	require.NoError(a.t, err)
	return token
}

func (a *testAPI) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	t.Run("valid credentials", func(t *testing.T) {
		rec, env := api.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{CPF: "000", Password: handlerTestPassword})
		require.Equal(t, http.StatusCreated, rec.Code)

		var login auth.LoginResponse
		require.NoError(t, json.Unmarshal(env.Data, &login))
		assert.NotEmpty(t, login.AccessToken)
		assert.Equal(t, auth.RoleAdmin, login.Operator.Role)

		rec, _ = api.do(http.MethodGet, "/api/v1/guards", login.AccessToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, env := api.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{CPF: "111", Password: "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, env.Success)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec, env := api.do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginRequest{})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Details, "cpf")
		assert.Contains(t, env.Error.Details, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		api.handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthentication(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(http.MethodGet, "/api/v1/guards", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = api.do(http.MethodGet, "/api/v1/guards", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	stream, _, err := api.jwt.GenerateStreamToken("u1", "Diretoria SRAD", auth.RoleAdmin)
	require.NoError(t, err)
	rec, _ = api.do(http.MethodGet, "/api/v1/guards", stream, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "stream tokens do not open console sessions")
}

func TestLogout(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleSupervisor)

	rec, _ := api.do(http.MethodGet, "/api/v1/absences", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, "/api/v1/absences", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		method string
		path   string
		role   auth.Role
		body   any
		want   int
	}{
		{"supervisor cannot activate posts", http.MethodPost, "/api/v1/posts", auth.RoleSupervisor, map[string]any{}, http.StatusForbidden},
		{"guard cannot cover absences", http.MethodPost, "/api/v1/absences/F1/cover", auth.RoleGuard, map[string]string{"substitute_id": "V4"}, http.StatusForbidden},
		{"auditor reads audit", http.MethodGet, "/api/v1/audit", auth.RoleAuditor, nil, http.StatusOK},
		{"supervisor cannot read audit", http.MethodGet, "/api/v1/audit", auth.RoleSupervisor, nil, http.StatusForbidden},
		{"hr cannot tune engine", http.MethodPatch, "/api/v1/settings", auth.RoleHR, map[string]any{"key": "max_travel_minutes", "value": 90}, http.StatusForbidden},
		{"supervisor cannot decide exceptions", http.MethodPost, "/api/v1/exceptions/X/decision", auth.RoleSupervisor, map[string]string{"decision": "APPROVED"}, http.StatusForbidden},
		{"supervisor cannot register equipment", http.MethodPost, "/api/v1/equipment", auth.RoleSupervisor, map[string]string{"kind": "RADIO", "asset_tag": "RAD-9"}, http.StatusForbidden},
		{"guard cannot check out equipment", http.MethodPost, "/api/v1/equipment/EQ1/checkout", auth.RoleGuard, map[string]string{"guard_id": "V2"}, http.StatusForbidden},
		{"hr cannot hand over shifts", http.MethodPost, "/api/v1/shifts/handover", auth.RoleHR, map[string]string{"incoming_supervisor": "X", "notes": "y"}, http.StatusForbidden},
		{"guard reads current shift", http.MethodGet, "/api/v1/shifts/current", auth.RoleGuard, nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := api.do(tt.method, tt.path, api.token(tt.role), tt.body)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRegions(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleSupervisor)

	rec, env := api.do(http.MethodGet, "/api/v1/regions/travel?origin=Plano+Piloto&destination=Taguatinga", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var travel travelResponse
	require.NoError(t, json.Unmarshal(env.Data, &travel))
	assert.Equal(t, 40, travel.Minutes)

	rec, _ = api.do(http.MethodGet, "/api/v1/regions/travel?origin=Atlantis&destination=Taguatinga", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/regions?state=GO", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var infos []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &infos))
	require.NotEmpty(t, infos)
	for _, info := range infos {
		assert.Equal(t, "GO", info["state"])
	}

	rec, _ = api.do(http.MethodGet, "/api/v1/regions?state=SP", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGuards(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleHR)

	rec, env := api.do(http.MethodGet, "/api/v1/guards?crew=ODD&status=ACTIVE", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var guards []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &guards))
	assert.Len(t, guards, 3)

	rec, _ = api.do(http.MethodGet, "/api/v1/guards/V99", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	admit := map[string]any{
		"name":               "Carla Nunes",
		"registration":       "2001",
		"cpf":                "777.888.999-00",
		"position":           "Vigilante",
		"crew":               "EVEN",
		"home_region":        "Formosa (GO)",
		"authorized_regions": []string{"Plano Piloto", "Formosa (GO)"},
	}
	rec, env = api.do(http.MethodPost, "/api/v1/guards", token, admit)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "Plano Piloto")

	admit["home_region"] = "Taguatinga"
	admit["authorized_regions"] = []string{"Plano Piloto", "Taguatinga"}
	rec, _ = api.do(http.MethodPost, "/api/v1/guards", token, admit)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = api.do(http.MethodPost, "/api/v1/guards", token, admit)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAbsenceCoverageFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleSupervisor)

	rec, env := api.do(http.MethodGet, "/api/v1/absences/F1/candidates?limit=3", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ranking dispatch.RankingResponse
	require.NoError(t, json.Unmarshal(env.Data, &ranking))
	require.Len(t, ranking.Candidates, 3)
	assert.Equal(t, "V4", ranking.Candidates[0].GuardID)
	assert.Equal(t, "V3", ranking.Candidates[1].GuardID)
	assert.Equal(t, "V2", ranking.Candidates[2].GuardID)

	rec, _ = api.do(http.MethodGet, "/api/v1/absences/F1/candidates?limit=-1", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/absences/F1/cover", token, map[string]string{"substitute_id": "V1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/absences/F1/cover", token, map[string]string{"substitute_id": "V99"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/absences/F1/cover", token, map[string]string{"substitute_id": "V4"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var coverage dispatch.CoverageResponse
	require.NoError(t, json.Unmarshal(env.Data, &coverage))
	assert.Equal(t, "COVERED", string(coverage.Absence.Status))

	rec, _ = api.do(http.MethodPost, "/api/v1/absences/F1/cover", token, map[string]string{"substitute_id": "V3"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/absences/F1/uncover", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	entries, err := api.container.Services.Audit.List(context.Background(), audit.EntryFilter{EntityID: ptr("F1")})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionAbsenceCovered, entries[0].Action)
	assert.Equal(t, "Operador SUPERVISOR", entries[0].ActorName)
}

func TestDispatchValidate(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleSupervisor)

	rec, env := api.do(http.MethodPost, "/api/v1/dispatch/validate", token, dispatch.ValidateRequest{GuardID: "V2", PostID: "P2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var validation dispatch.Validation
	require.NoError(t, json.Unmarshal(env.Data, &validation))
	assert.False(t, validation.OK)
	assert.Equal(t, dispatch.ReasonRegionNotAuthorized, validation.Reason)

	rec, _ = api.do(http.MethodPost, "/api/v1/dispatch/validate", token, dispatch.ValidateRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEquipment(t *testing.T) {
	api := newTestAPI(t)
	admin := api.token(auth.RoleAdmin)
	supervisor := api.token(auth.RoleSupervisor)

	rec, env := api.do(http.MethodGet, "/api/v1/equipment?kind=RADIO", supervisor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 1, env.Meta.Total)

	rec, env = api.do(http.MethodPost, "/api/v1/equipment", admin, map[string]string{"kind": "WEAPON", "asset_tag": "arm-0002"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created equipment.EquipmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "ARM-0002", created.AssetTag)

	rec, _ = api.do(http.MethodPost, "/api/v1/equipment", admin, map[string]string{"kind": "WEAPON", "asset_tag": "ARM-0001"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// V5 is on vacation.
	rec, _ = api.do(http.MethodPost, "/api/v1/equipment/EQ1/checkout", supervisor, map[string]string{"guard_id": "V5"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/equipment/EQ1/checkout", supervisor, map[string]string{"guard_id": "V2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, _ = api.do(http.MethodPost, "/api/v1/equipment/EQ1/checkout", supervisor, map[string]string{"guard_id": "V3"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env = api.do(http.MethodPost, "/api/v1/equipment/EQ1/return", supervisor, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var returned equipment.EquipmentResponse
	require.NoError(t, json.Unmarshal(env.Data, &returned))
	assert.Equal(t, equipment.StatusAvailable, returned.Status)

	rec, _ = api.do(http.MethodPost, "/api/v1/equipment/EQ4/restore", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = api.do(http.MethodPost, "/api/v1/equipment/EQ404/restore", admin, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = api.do(http.MethodGet, "/api/v1/equipment/summary", supervisor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary equipment.SummaryResponse
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 5, summary.Total)
}

func TestShiftHandover(t *testing.T) {
	api := newTestAPI(t)
	supervisor := api.token(auth.RoleSupervisor)

	rec, _ := api.do(http.MethodPost, "/api/v1/shifts", supervisor, map[string]string{"supervisor": "SVP ALPHA", "shift": "NIGHT"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/shifts/handover", supervisor, map[string]string{"incoming_supervisor": "SVP ALPHA"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, env := api.do(http.MethodPost, "/api/v1/shifts/handover", supervisor, map[string]string{
		"incoming_supervisor": "SVP ALPHA", "shift": "NIGHT", "notes": "F1 sem cobertura",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var handover shift.HandoverResponse
	require.NoError(t, json.Unmarshal(env.Data, &handover))
	assert.Equal(t, "SVP RICARDO M.", handover.Outgoing.Supervisor)
	assert.Equal(t, "F1 sem cobertura", handover.Outgoing.HandoverNotes)

	rec, env = api.do(http.MethodGet, "/api/v1/shifts/current", supervisor, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var current shift.ShiftResponse
	require.NoError(t, json.Unmarshal(env.Data, &current))
	assert.Equal(t, "SVP ALPHA", current.Supervisor)

	entries, err := api.container.Services.Audit.List(context.Background(), audit.EntryFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, audit.ActionShiftHandover, entries[0].Action)
	assert.Equal(t, "Operador SUPERVISOR", entries[0].ActorName)
}

func TestSettings(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleAdmin)

	rec, env := api.do(http.MethodPatch, "/api/v1/settings", token, map[string]any{"key": "max_travel_minutes", "value": 90})
	require.Equal(t, http.StatusOK, rec.Code)
	var param settings.ParameterResponse
	require.NoError(t, json.Unmarshal(env.Data, &param))
	assert.Equal(t, 80.0, param.Previous)
	assert.Equal(t, 90.0, param.Value)

	rec, _ = api.do(http.MethodPatch, "/api/v1/settings", token, map[string]any{"key": "warp_factor", "value": 9})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboard(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleSupervisor)

	rec, _ := api.do(http.MethodGet, "/api/v1/dashboard/readiness", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodGet, "/api/v1/dashboard/violations", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/dashboard/simulate", token, map[string]any{"region": "Plano Piloto", "new_posts": 1})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/dashboard/simulate", token, map[string]any{"region": "Plano Piloto", "new_posts": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestJobs(t *testing.T) {
	api := newTestAPI(t)
	token := api.token(auth.RoleAdmin)

	rec, _ := api.do(http.MethodPost, "/api/v1/jobs/absence-sla/run", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = api.do(http.MethodPost, "/api/v1/jobs/payroll/run", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuditStream(t *testing.T) {
	api := newTestAPI(t)
	server := httptest.NewServer(api.handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/audit/stream")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/audit/stream?token=" + api.token(auth.RoleAdmin))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "access tokens are not stream tokens")

	streamToken, _, err := api.jwt.GenerateStreamToken("u1", "Diretoria SRAD", auth.RoleAdmin)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/audit/stream?token="+streamToken, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: connected\n", line)

	// Drain the connected payload and its blank separator before publishing.
	_, err = reader.ReadString('\n')
	require.NoError(t, err)
	_, err = reader.ReadString('\n')
	require.NoError(t, err)

	rec, _ := api.do(http.MethodPost, "/api/v1/absences/F1/uncover", api.token(auth.RoleSupervisor), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: audit\n", line)

	line, err = reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, string(audit.ActionAbsenceUncovered))
}

func ptr[T any](v T) *T { return &v }
