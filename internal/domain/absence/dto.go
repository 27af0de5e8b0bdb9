package absence

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type ReportAbsenceRequest struct {
	PostID  string     `json:"post_id"`
	GuardID string     `json:"guard_id"`
	Date    string     `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
	Shift   post.Shift `json:"shift,omitempty"`
	Reason  string     `json:"reason,omitempty"`

	date time.Time
}

func (r *ReportAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	if validator.IsEmpty(r.GuardID) {
		errs = append(errs, validator.ValidationError{Field: "guard_id", Message: "guard_id is required"})
	}
	if r.Date != "" {
		date, ok := validator.IsValidDate(r.Date)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
		r.date = date
	}
	if r.Shift != "" && !r.Shift.Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be DAY, NIGHT or 24H"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedDate is the zero time when no date was given.
func (r *ReportAbsenceRequest) ParsedDate() time.Time {
	return r.date
}

type AbsenceFilter struct {
	Status *Status `json:"status,omitempty"`
	PostID *string `json:"post_id,omitempty"`
}

type AbsenceResponse struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	PostID       string     `json:"post_id"`
	GuardID      string     `json:"guard_id"`
	Crew         guard.Crew `json:"crew"`
	Shift        post.Shift `json:"shift"`
	Status       Status     `json:"status"`
	SubstituteID *string    `json:"substitute_id,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	ReportedAt   time.Time  `json:"reported_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func ToResponse(a Absence) AbsenceResponse {
	return AbsenceResponse{
		ID:           a.ID,
		Date:         a.Date.Format("2006-01-02"),
		PostID:       a.PostID,
		GuardID:      a.GuardID,
		Crew:         a.Crew,
		Shift:        a.Shift,
		Status:       a.Status,
		SubstituteID: a.SubstituteID,
		Reason:       a.Reason,
		ReportedAt:   a.ReportedAt,
		ResolvedAt:   a.ResolvedAt,
	}
}

// SLASweepResult reports one pass of the response-SLA job.
type SLASweepResult struct {
	Pending  int      `json:"pending"`
	Breached []string `json:"breached"`
}
