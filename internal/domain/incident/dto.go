package incident

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type RegisterIncidentRequest struct {
	Kind         Kind        `json:"kind"`
	Criticality  Criticality `json:"criticality"`
	PostID       string      `json:"post_id"`
	GuardID      string      `json:"guard_id"`
	Description  string      `json:"description"`
	ActionsTaken []string    `json:"actions_taken"`
}

func (r *RegisterIncidentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "unknown incident kind"})
	}
	if r.Criticality == "" {
		r.Criticality = CriticalityMedium
	} else if !r.Criticality.Valid() {
		errs = append(errs, validator.ValidationError{Field: "criticality", Message: "criticality must be LOW, MEDIUM, HIGH or CRITICAL"})
	}
	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return validator.ValidationErrors{{Field: "status", Message: "status must be OPEN, IN_PROGRESS or CLOSED"}}
	}
	return nil
}

type IncidentFilter struct {
	Status *Status `json:"status,omitempty"`
	PostID *string `json:"post_id,omitempty"`
}

type IncidentResponse struct {
	ID           string      `json:"id"`
	Kind         Kind        `json:"kind"`
	Criticality  Criticality `json:"criticality"`
	PostID       string      `json:"post_id"`
	GuardID      string      `json:"guard_id,omitempty"`
	OccurredAt   time.Time   `json:"occurred_at"`
	Description  string      `json:"description"`
	ActionsTaken []string    `json:"actions_taken"`
	Status       Status      `json:"status"`
	Operator     string      `json:"operator"`
}

func ToResponse(i Incident) IncidentResponse {
	actions := i.ActionsTaken
	if actions == nil {
		actions = []string{}
	}
	return IncidentResponse{
		ID:           i.ID,
		Kind:         i.Kind,
		Criticality:  i.Criticality,
		PostID:       i.PostID,
		GuardID:      i.GuardID,
		OccurredAt:   i.OccurredAt,
		Description:  i.Description,
		ActionsTaken: actions,
		Status:       i.Status,
		Operator:     i.Operator,
	}
}
