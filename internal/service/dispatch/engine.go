package dispatch

import (
	"sort"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

// RankSubstitutes ranks relief candidates for an absence at p. Only active
// guards of the opposite crew are considered. Candidates that fail validation
// stay in the list so operators can see why they were skipped.
//
// The result is sorted by score, highest first; equal scores keep roster order.
// The function reads its inputs only and is safe to call repeatedly.
func RankSubstitutes(a absence.Absence, p *post.Post, roster []guard.Guard, cfg settings.Config, exceptions exception.Lookup) []dispatch.Candidate {
	relief := a.Crew.Opposite()

	candidates := make([]dispatch.Candidate, 0, len(roster))
	for i := range roster {
		g := &roster[i]
		if g.Crew != relief || !g.IsActive() {
			continue
		}

		v := ValidateDispatch(g, p, exceptions)
		b := Score(g, p, v, cfg)
		candidates = append(candidates, dispatch.Candidate{
			Guard:      g.Clone(),
			Score:      b.Total(),
			Breakdown:  b,
			Validation: v,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Score computes each ranking term for one candidate.
func Score(g *guard.Guard, p *post.Post, v dispatch.Validation, cfg settings.Config) dispatch.Breakdown {
	w := cfg.Weights
	return dispatch.Breakdown{
		Compliance:       complianceTerm(v, w),
		RegionMatch:      regionMatchTerm(g, p, w),
		OvertimeHeadroom: overtimeTerm(g, cfg.MonthlyOvertimeCeiling, w),
		Fatigue:          fatigueTerm(g, w),
		NightAptitude:    nightTerm(g, p, w),
	}
}

func complianceTerm(v dispatch.Validation, w settings.Weights) float64 {
	if v.OK {
		return w.Compliance
	}
	return 0
}

// regionMatchTerm ignores exceptions: only the guard's own regions count.
func regionMatchTerm(g *guard.Guard, p *post.Post, w settings.Weights) float64 {
	if p != nil && g.IsAuthorizedFor(p.Region) {
		return w.RegionMatch
	}
	return 0
}

func overtimeTerm(g *guard.Guard, ceiling float64, w settings.Weights) float64 {
	return w.OvertimeHeadroom * (ceiling - g.OvertimeHours)
}

func fatigueTerm(g *guard.Guard, w settings.Weights) float64 {
	return -w.Fatigue * g.FatigueIndex
}

func nightTerm(g *guard.Guard, p *post.Post, w settings.Weights) float64 {
	if p != nil && p.Shift.IsNight() && g.NightApt {
		return w.NightAptitude
	}
	return 0
}
