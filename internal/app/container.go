package app

import (
	"context"
	"fmt"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/dashboard"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
	"github.com/srad-secure/srad-backend-go/internal/fixtures"
	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
	"github.com/srad-secure/srad-backend-go/internal/repository/memory"
	absenceService "github.com/srad-secure/srad-backend-go/internal/service/absence"
	auditService "github.com/srad-secure/srad-backend-go/internal/service/audit"
	dashboardService "github.com/srad-secure/srad-backend-go/internal/service/dashboard"
	dispatchService "github.com/srad-secure/srad-backend-go/internal/service/dispatch"
	equipmentService "github.com/srad-secure/srad-backend-go/internal/service/equipment"
	exceptionService "github.com/srad-secure/srad-backend-go/internal/service/exception"
	guardService "github.com/srad-secure/srad-backend-go/internal/service/guard"
	incidentService "github.com/srad-secure/srad-backend-go/internal/service/incident"
	postService "github.com/srad-secure/srad-backend-go/internal/service/post"
	settingsService "github.com/srad-secure/srad-backend-go/internal/service/settings"
	shiftService "github.com/srad-secure/srad-backend-go/internal/service/shift"
)

// Repositories are the in-memory stores backing one process.
type Repositories struct {
	Guards     guard.GuardRepository
	Posts      post.PostRepository
	Absences   absence.AbsenceRepository
	Exceptions exception.ExceptionRepository
	Incidents  incident.IncidentRepository
	Equipment  equipment.EquipmentRepository
	Shifts     shift.ShiftRepository
	Audit      audit.AuditRepository
	Settings   settings.SettingsRepository
}

// Services are the domain services built on Repositories.
type Services struct {
	Audit     audit.AuditService
	Settings  settings.SettingsService
	Guard     guard.GuardService
	Post      post.PostService
	Absence   absence.AbsenceService
	Exception exception.ExceptionService
	Incident  incident.IncidentService
	Equipment equipment.EquipmentService
	Shift     shift.ShiftService
	Dispatch  dispatch.DispatchService
	Dashboard dashboard.DashboardService
}

// Container wires stores, the live feed hub and every domain service.
type Container struct {
	Repos    Repositories
	Services Services
	Hub      *sse.Hub
}

// NewContainer builds a container with engine tunables cfg. When seed is set
// the startup fixtures are loaded with now as the clock.
func NewContainer(ctx context.Context, cfg settings.Config, seed bool, now time.Time) (*Container, error) {
	repos := Repositories{
		Guards:     memory.NewGuardRepository(),
		Posts:      memory.NewPostRepository(),
		Absences:   memory.NewAbsenceRepository(),
		Exceptions: memory.NewExceptionRepository(),
		Incidents:  memory.NewIncidentRepository(),
		Equipment:  memory.NewEquipmentRepository(),
		Shifts:     memory.NewShiftRepository(),
		Audit:      memory.NewAuditRepository(),
		Settings:   memory.NewSettingsRepository(cfg),
	}

	if seed {
		if err := fixtures.Seed(ctx, fixtures.Repositories{
			Guards:    repos.Guards,
			Posts:     repos.Posts,
			Absences:  repos.Absences,
			Equipment: repos.Equipment,
			Shifts:    repos.Shifts,
		}, now); err != nil {
			return nil, fmt.Errorf("failed to seed fixtures: %w", err)
		}
	}

	hub := sse.NewHub()
	auditSvc := auditService.NewAuditService(repos.Audit, hub)

	services := Services{
		Audit:     auditSvc,
		Settings:  settingsService.NewSettingsService(repos.Settings, auditSvc),
		Guard:     guardService.NewGuardService(repos.Guards, repos.Posts, repos.Settings, auditSvc),
		Post:      postService.NewPostService(repos.Posts, auditSvc),
		Absence:   absenceService.NewAbsenceService(repos.Absences, repos.Guards, repos.Posts, repos.Settings, auditSvc),
		Exception: exceptionService.NewExceptionService(repos.Exceptions, repos.Guards, repos.Posts, auditSvc),
		Incident:  incidentService.NewIncidentService(repos.Incidents, repos.Guards, repos.Posts, auditSvc),
		Equipment: equipmentService.NewEquipmentService(repos.Equipment, repos.Guards, auditSvc),
		Shift:     shiftService.NewShiftService(repos.Shifts, auditSvc),
		Dispatch: dispatchService.NewDispatchService(
			repos.Guards, repos.Posts, repos.Absences, repos.Exceptions, repos.Settings, auditSvc,
		),
		Dashboard: dashboardService.NewDashboardService(
			repos.Guards, repos.Posts, repos.Absences, repos.Incidents, repos.Exceptions,
		),
	}

	return &Container{Repos: repos, Services: services, Hub: hub}, nil
}
