package dispatch

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
)

func testGuard(id string, crew guard.Crew, regions ...region.Region) guard.Guard {
	return guard.Guard{
		ID:                id,
		Name:              "VIGILANTE " + id,
		Registration:      "R" + id,
		CPF:               "00000000000",
		Crew:              crew,
		HomeRegion:        regions[0],
		AuthorizedRegions: regions,
		Status:            guard.StatusActive,
		OvertimeHours:     12,
		FatigueIndex:      0.2,
		NightApt:          true,
		CheckIn:           guard.CheckInPending,
	}
}

func testPost(id string, r region.Region, shift post.Shift) post.Post {
	return post.Post{
		ID:                id,
		Name:              "POSTO " + id,
		Client:            "CLIENTE",
		Address:           "Endereço",
		Region:            r,
		State:             r.State(),
		RequiredHeadcount: 2,
		Risk:              post.RiskHigh,
		Shift:             shift,
		Latitude:          -15.7997,
		Longitude:         -47.8641,
		RadiusMeters:      200,
		Status:            post.StatusActive,
	}
}

// g1 mirrors the reference guard: crew Even, home Taguatinga.
func g1() guard.Guard {
	g := testGuard("G1", guard.CrewEven, region.Taguatinga, region.PlanoPiloto, region.Ceilandia, region.Samambaia)
	g.Name = "JOÃO SILVA (ALPHA)"
	return g
}

func p1() post.Post {
	p := testPost("P1", region.PlanoPiloto, post.ShiftDay)
	p.Name = "CONGRESSO NACIONAL"
	return p
}

func pendingAbsence(id string, g guard.Guard, p post.Post) absence.Absence {
	return absence.Absence{
		ID:         id,
		Date:       time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
		PostID:     p.ID,
		GuardID:    g.ID,
		Crew:       g.Crew,
		Shift:      p.Shift,
		Status:     absence.StatusPending,
		ReportedAt: time.Date(2026, 10, 17, 7, 0, 0, 0, time.UTC),
	}
}
