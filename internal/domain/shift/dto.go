package shift

import (
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type StartShiftRequest struct {
	Supervisor string     `json:"supervisor"`
	Shift      post.Shift `json:"shift"`
}

func (r *StartShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Supervisor = strings.ToUpper(strings.TrimSpace(r.Supervisor))
	if validator.IsEmpty(r.Supervisor) {
		errs = append(errs, validator.ValidationError{Field: "supervisor", Message: "supervisor is required"})
	}
	if !r.Shift.Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be DAY, NIGHT or 24H"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// HandoverRequest ends the active shift. Shift defaults to the outgoing one.
type HandoverRequest struct {
	IncomingSupervisor string     `json:"incoming_supervisor"`
	Shift              post.Shift `json:"shift,omitempty"`
	Notes              string     `json:"notes"`
}

func (r *HandoverRequest) Validate() error {
	var errs validator.ValidationErrors

	r.IncomingSupervisor = strings.ToUpper(strings.TrimSpace(r.IncomingSupervisor))
	r.Notes = strings.TrimSpace(r.Notes)
	if validator.IsEmpty(r.IncomingSupervisor) {
		errs = append(errs, validator.ValidationError{Field: "incoming_supervisor", Message: "incoming_supervisor is required"})
	}
	if r.Shift != "" && !r.Shift.Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be DAY, NIGHT or 24H"})
	}
	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "handover notes are required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftFilter struct {
	Status *Status `json:"status,omitempty"`
}

type ShiftResponse struct {
	ID            string     `json:"id"`
	Supervisor    string     `json:"supervisor"`
	Shift         post.Shift `json:"shift"`
	Status        Status     `json:"status"`
	StartedAt     time.Time  `json:"started_at"`
	EndedAt       *time.Time `json:"ended_at,omitempty"`
	HandoverNotes string     `json:"handover_notes,omitempty"`
	HandedOverTo  string     `json:"handed_over_to,omitempty"`
}

func ToResponse(s SupervisorShift) ShiftResponse {
	return ShiftResponse{
		ID:            s.ID,
		Supervisor:    s.Supervisor,
		Shift:         s.Shift,
		Status:        s.Status,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		HandoverNotes: s.HandoverNotes,
		HandedOverTo:  s.HandedOverTo,
	}
}

type HandoverResponse struct {
	Outgoing ShiftResponse `json:"outgoing"`
	Incoming ShiftResponse `json:"incoming"`
}
