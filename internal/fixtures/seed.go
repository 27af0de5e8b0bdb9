package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
)

// ==========================================
// SEED DATA
// ==========================================

// Posts returns the contract sites present at startup.
func Posts(now time.Time) []post.Post {
	return []post.Post{
		{
			ID: "P1", Name: "CONGRESSO NACIONAL", Client: "UNIÃO", Address: "Esplanada",
			Region: region.PlanoPiloto, State: region.StateDF, RequiredHeadcount: 10,
			Risk: post.RiskHigh, Shift: post.Shift24H, Latitude: -15.7997, Longitude: -47.8641,
			RadiusMeters: 200, Critical: true, Status: post.StatusActive, ActivatedAt: now,
		},
		{
			ID: "P2", Name: "TERMINAL RODOVIÁRIO TAGUATINGA", Client: "DER-DF", Address: "Taguatinga Centro",
			Region: region.Taguatinga, State: region.StateDF, RequiredHeadcount: 4,
			Risk: post.RiskMedium, Shift: post.ShiftNight, Latitude: -15.8339, Longitude: -48.0564,
			RadiusMeters: 150, Status: post.StatusActive, ActivatedAt: now,
		},
	}
}

// Guards returns the roster present at startup. V1 covers the reference
// scenario; the Odd crew gives the ranking something to choose from.
func Guards(now time.Time) []guard.Guard {
	p1 := "P1"
	validUntil := now.AddDate(1, 0, 0)
	docs := func() []guard.Document {
		return []guard.Document{{Kind: guard.DocumentRecycling, ValidUntil: validUntil, Status: guard.DocumentValid}}
	}

	return []guard.Guard{
		{
			ID: "V1", Name: "JOÃO SILVA (ALPHA)", Registration: "1001", CPF: "22222222222",
			Position: "Vigilante", Phone: "61988887777", Crew: guard.CrewEven,
			HomeRegion:        region.Taguatinga,
			AuthorizedRegions: []region.Region{region.PlanoPiloto, region.Taguatinga, region.Ceilandia, region.Samambaia},
			Status:            guard.StatusActive, OvertimeHours: 12, FatigueIndex: 0.2, NightApt: true,
			CurrentPostID: &p1, CheckIn: guard.CheckInInside, LastCheckInAt: &now,
			Documents: docs(), AdmittedAt: now, UpdatedAt: now,
		},
		{
			ID: "V2", Name: "MARIA SOUZA (BRAVO)", Registration: "1002", CPF: "33344455566",
			Position: "Vigilante", Crew: guard.CrewOdd,
			HomeRegion:        region.Guara,
			AuthorizedRegions: []region.Region{region.PlanoPiloto, region.Guara, region.AguasClaras},
			Status:            guard.StatusActive, OvertimeHours: 20, FatigueIndex: 0.4, NightApt: true,
			CheckIn: guard.CheckInPending, Documents: docs(), AdmittedAt: now, UpdatedAt: now,
		},
		{
			ID: "V3", Name: "PEDRO ALVES (BRAVO)", Registration: "1003", CPF: "44455566677",
			Position: "Vigilante", Crew: guard.CrewOdd,
			HomeRegion:        region.Ceilandia,
			AuthorizedRegions: []region.Region{region.PlanoPiloto, region.Ceilandia, region.Taguatinga},
			Status:            guard.StatusActive, OvertimeHours: 5, FatigueIndex: 0.1, NightApt: false,
			CheckIn: guard.CheckInPending, Documents: docs(), AdmittedAt: now, UpdatedAt: now,
		},
		{
			ID: "V4", Name: "ANA COSTA (BRAVO)", Registration: "1004", CPF: "55566677788",
			Position: "Vigilante", Crew: guard.CrewOdd,
			HomeRegion:        region.Gama,
			AuthorizedRegions: []region.Region{region.PlanoPiloto, region.Gama, region.SantaMaria},
			Status:            guard.StatusActive, OvertimeHours: 0, FatigueIndex: 0, NightApt: true,
			CheckIn: guard.CheckInPending, Documents: docs(), AdmittedAt: now, UpdatedAt: now,
		},
		{
			ID: "V5", Name: "LUCAS PEREIRA (BRAVO)", Registration: "1005", CPF: "66677788899",
			Position: "Vigilante", Crew: guard.CrewOdd,
			HomeRegion:        region.Sobradinho,
			AuthorizedRegions: []region.Region{region.PlanoPiloto, region.Sobradinho},
			Status:            guard.StatusVacation, OvertimeHours: 2, FatigueIndex: 0.1, NightApt: true,
			CheckIn: guard.CheckInPending, Documents: docs(), AdmittedAt: now, UpdatedAt: now,
		},
	}
}

// Absences returns the shifts already open at startup.
func Absences(now time.Time) []absence.Absence {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return []absence.Absence{
		{
			ID: "F1", Date: day, PostID: "P1", GuardID: "V1", Crew: guard.CrewEven,
			Shift: post.ShiftDay, Status: absence.StatusPending, ReportedAt: now,
		},
	}
}

// Equipment returns the armory at startup. V1 carries the day radio.
func Equipment(now time.Time) []equipment.Equipment {
	v1 := "V1"
	return []equipment.Equipment{
		{ID: "EQ1", Kind: equipment.KindWeapon, AssetTag: "ARM-0001", Status: equipment.StatusAvailable, RegisteredAt: now, UpdatedAt: now},
		{ID: "EQ2", Kind: equipment.KindVest, AssetTag: "CLT-0001", Status: equipment.StatusAvailable, RegisteredAt: now, UpdatedAt: now},
		{
			ID: "EQ3", Kind: equipment.KindRadio, AssetTag: "RAD-0001", Status: equipment.StatusInUse,
			GuardID: &v1, CheckedOutAt: &now, RegisteredAt: now, UpdatedAt: now,
		},
		{ID: "EQ4", Kind: equipment.KindVehicle, AssetTag: "VTR-0001", Status: equipment.StatusMaintenance, RegisteredAt: now, UpdatedAt: now},
	}
}

// Shifts returns the supervisor on watch at startup.
func Shifts(now time.Time) []shift.SupervisorShift {
	return []shift.SupervisorShift{
		{ID: "S1", Supervisor: "SVP RICARDO M.", Shift: post.ShiftDay, StartedAt: now, Status: shift.StatusActive},
	}
}

// Repositories are the stores Seed writes into. Equipment and Shifts are
// optional.
type Repositories struct {
	Guards    guard.GuardRepository
	Posts     post.PostRepository
	Absences  absence.AbsenceRepository
	Equipment equipment.EquipmentRepository
	Shifts    shift.ShiftRepository
}

// Seed loads the startup roster, posts, absences, armory and supervisor watch.
func Seed(ctx context.Context, repos Repositories, now time.Time) error {
	for _, p := range Posts(now) {
		if _, err := repos.Posts.Create(ctx, p); err != nil {
			return fmt.Errorf("failed to seed post %s: %w", p.ID, err)
		}
	}
	for _, g := range Guards(now) {
		if _, err := repos.Guards.Create(ctx, g); err != nil {
			return fmt.Errorf("failed to seed guard %s: %w", g.ID, err)
		}
	}
	for _, a := range Absences(now) {
		if _, err := repos.Absences.Create(ctx, a); err != nil {
			return fmt.Errorf("failed to seed absence %s: %w", a.ID, err)
		}
	}
	if repos.Equipment != nil {
		for _, e := range Equipment(now) {
			if _, err := repos.Equipment.Create(ctx, e); err != nil {
				return fmt.Errorf("failed to seed equipment %s: %w", e.ID, err)
			}
		}
	}
	if repos.Shifts != nil {
		for _, sh := range Shifts(now) {
			if _, err := repos.Shifts.Create(ctx, sh); err != nil {
				return fmt.Errorf("failed to seed shift %s: %w", sh.ID, err)
			}
		}
	}
	return nil
}
