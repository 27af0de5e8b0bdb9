package dashboard

import (
	"context"
	"fmt"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/dashboard"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	guardRepo     guard.GuardRepository
	postRepo      post.PostRepository
	absenceRepo   absence.AbsenceRepository
	incidentRepo  incident.IncidentRepository
	exceptionRepo exception.ExceptionRepository
}

func NewDashboardService(
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	absenceRepo absence.AbsenceRepository,
	incidentRepo incident.IncidentRepository,
	exceptionRepo exception.ExceptionRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		guardRepo:     guardRepo,
		postRepo:      postRepo,
		absenceRepo:   absenceRepo,
		incidentRepo:  incidentRepo,
		exceptionRepo: exceptionRepo,
	}
}

// Readiness implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Readiness(ctx context.Context) (*dashboard.ReadinessResponse, error) {
	var (
		pending   []absence.Absence
		incidents []incident.Incident
		guards    []guard.Guard
		posts     []post.Post
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Pending absences
	g.Go(func() error {
		status := absence.StatusPending
		var err error
		pending, err = s.absenceRepo.List(gCtx, absence.AbsenceFilter{Status: &status})
		return err
	})

	// 2. Incidents (open or in progress)
	g.Go(func() error {
		var err error
		incidents, err = s.incidentRepo.List(gCtx, incident.IncidentFilter{})
		return err
	})

	// 3. Roster
	g.Go(func() error {
		var err error
		guards, err = s.guardRepo.List(gCtx, guard.GuardFilter{})
		return err
	})

	// 4. Posts
	g.Go(func() error {
		var err error
		posts, err = s.postRepo.List(gCtx, post.PostFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load readiness data: %w", err)
	}

	resp := &dashboard.ReadinessResponse{PendingAbsences: len(pending)}
	for _, i := range incidents {
		if i.Status != incident.StatusClosed {
			resp.OpenIncidents++
		}
	}
	for _, gd := range guards {
		if gd.CheckIn == guard.CheckInOutside {
			resp.OutsideGeofence++
		}
		if gd.HasExpiredDocument() {
			resp.ExpiredDocuments++
		}
		if gd.IsActive() {
			resp.ActiveGuards++
		}
	}
	for _, p := range posts {
		if p.IsActive() {
			resp.ActivePosts++
		}
	}

	resp.Score = dashboard.ReadinessScore(resp.PendingAbsences, resp.OpenIncidents, resp.OutsideGeofence, resp.ExpiredDocuments)
	resp.Label = dashboard.LabelFor(resp.Score)
	return resp, nil
}

// OperationalMap implements dashboard.DashboardService. A guard is a violator
// when assigned to a post outside their regions with no approved exception for
// that exact pair. A consumed exception still covers the stint it was spent on.
func (s *DashboardServiceImpl) OperationalMap(ctx context.Context) ([]dashboard.PostStatusResponse, error) {
	var (
		posts    []post.Post
		guards   []guard.Guard
		approved []exception.RegionalException
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		posts, err = s.postRepo.List(gCtx, post.PostFilter{})
		return err
	})

	g.Go(func() error {
		var err error
		guards, err = s.guardRepo.List(gCtx, guard.GuardFilter{})
		return err
	})

	g.Go(func() error {
		status := exception.StatusApproved
		var err error
		approved, err = s.exceptionRepo.List(gCtx, exception.ExceptionFilter{Status: &status})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load operational map: %w", err)
	}

	covered := make(map[[2]string]struct{}, len(approved))
	for _, e := range approved {
		covered[[2]string{e.GuardID, e.PostID}] = struct{}{}
	}

	byPost := make(map[string][]guard.Guard)
	for _, gd := range guards {
		if gd.CurrentPostID != nil {
			byPost[*gd.CurrentPostID] = append(byPost[*gd.CurrentPostID], gd)
		}
	}

	out := make([]dashboard.PostStatusResponse, 0, len(posts))
	for _, p := range posts {
		status := dashboard.PostStatusResponse{
			PostID:    p.ID,
			Name:      p.Name,
			Region:    p.Region,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			GuardIDs:  []string{},
		}
		for _, gd := range byPost[p.ID] {
			status.GuardIDs = append(status.GuardIDs, gd.ID)
			if gd.CheckIn == guard.CheckInOutside {
				status.Abandonment = true
			}
			if gd.IsAuthorizedFor(p.Region) {
				continue
			}
			if _, ok := covered[[2]string{gd.ID, p.ID}]; ok {
				continue
			}
			status.CARViolation = true
			status.ViolatorIDs = append(status.ViolatorIDs, gd.ID)
		}
		out = append(out, status)
	}
	return out, nil
}

// Simulate implements dashboard.DashboardService. The pool counts every guard
// authorized for the region, regardless of status.
func (s *DashboardServiceImpl) Simulate(ctx context.Context, req dashboard.SimulationRequest) (*dashboard.SimulationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	guards, err := s.guardRepo.List(ctx, guard.GuardFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}

	pool := 0
	for _, gd := range guards {
		if gd.IsAuthorizedFor(req.Region) {
			pool++
		}
	}
	needed := req.NewPosts * dashboard.GuardsPerPost
	ratio := float64(pool) / float64(needed)

	return &dashboard.SimulationResponse{
		Region:  req.Region,
		Pool:    pool,
		Needed:  needed,
		Ratio:   ratio,
		Balance: pool - needed,
		Viable:  ratio >= 1,
	}, nil
}
