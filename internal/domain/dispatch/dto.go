package dispatch

import (
	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

// DefaultCandidateLimit is how many candidates the console shows.
const DefaultCandidateLimit = 5

type ValidateRequest struct {
	GuardID string `json:"guard_id"`
	PostID  string `json:"post_id"`
}

func (r *ValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GuardID) {
		errs = append(errs, validator.ValidationError{Field: "guard_id", Message: "guard_id is required"})
	}
	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{Field: "post_id", Message: "post_id is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CoverRequest struct {
	AbsenceID    string `json:"-"`
	SubstituteID string `json:"substitute_id"`
}

func (r *CoverRequest) Validate() error {
	if validator.IsEmpty(r.SubstituteID) {
		return validator.ValidationErrors{{Field: "substitute_id", Message: "substitute_id is required"}}
	}
	return nil
}

type ReassignRequest struct {
	GuardID       string `json:"-"`
	PostID        string `json:"post_id"`
	Justification string `json:"justification"`
}

func (r *ReassignRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{Field: "justification", Message: "justification is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CandidateResponse struct {
	GuardID       string        `json:"guard_id"`
	Name          string        `json:"name"`
	Registration  string        `json:"registration"`
	Crew          guard.Crew    `json:"crew"`
	HomeRegion    region.Region `json:"home_region"`
	OvertimeHours float64       `json:"overtime_hours"`
	FatigueIndex  float64       `json:"fatigue_index"`
	NightApt      bool          `json:"night_apt"`
	Score         float64       `json:"score"`
	Breakdown     Breakdown     `json:"breakdown"`
	Validation    Validation    `json:"validation"`
	Selectable    bool          `json:"selectable"`
}

func ToCandidateResponse(c Candidate) CandidateResponse {
	return CandidateResponse{
		GuardID:       c.Guard.ID,
		Name:          c.Guard.Name,
		Registration:  c.Guard.Registration,
		Crew:          c.Guard.Crew,
		HomeRegion:    c.Guard.HomeRegion,
		OvertimeHours: c.Guard.OvertimeHours,
		FatigueIndex:  c.Guard.FatigueIndex,
		NightApt:      c.Guard.NightApt,
		Score:         c.Score,
		Breakdown:     c.Breakdown,
		Validation:    c.Validation,
		Selectable:    c.Validation.OK,
	}
}

type RankingResponse struct {
	Absence    absence.AbsenceResponse `json:"absence"`
	PostRegion region.Region           `json:"post_region"`
	Candidates []CandidateResponse     `json:"candidates"`
	Total      int                     `json:"total"`
}

type CoverageResponse struct {
	Absence    absence.AbsenceResponse `json:"absence"`
	Validation Validation              `json:"validation"`
}

type ReassignResponse struct {
	Guard      guard.GuardResponse `json:"guard"`
	Validation Validation          `json:"validation"`
}
