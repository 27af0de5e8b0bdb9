package exception

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type RequestExceptionRequest struct {
	GuardID string `json:"guard_id"`
	PostID  string `json:"post_id"`
	Reason  string `json:"reason"`
}

func (r *RequestExceptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GuardID) {
		errs = append(errs, validator.ValidationError{Field: "guard_id", Message: "guard_id is required"})
	}
	if validator.IsEmpty(r.PostID) {
		errs = append(errs, validator.ValidationError{Field: "post_id", Message: "post_id is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideExceptionRequest struct {
	ID       string `json:"-"`
	Decision Status `json:"decision"`
}

func (r *DecideExceptionRequest) Validate() error {
	if r.Decision != StatusApproved && r.Decision != StatusRejected {
		return validator.ValidationErrors{{Field: "decision", Message: ErrInvalidDecision.Error()}}
	}
	return nil
}

type ExceptionFilter struct {
	Status  *Status `json:"status,omitempty"`
	GuardID *string `json:"guard_id,omitempty"`
	PostID  *string `json:"post_id,omitempty"`
}

type ExceptionResponse struct {
	ID          string     `json:"id"`
	GuardID     string     `json:"guard_id"`
	PostID      string     `json:"post_id"`
	Reason      string     `json:"reason"`
	Status      Status     `json:"status"`
	RequestedBy string     `json:"requested_by"`
	RequestedAt time.Time  `json:"requested_at"`
	DecidedBy   *string    `json:"decided_by,omitempty"`
	DecidedAt   *time.Time `json:"decided_at,omitempty"`
	ConsumedAt  *time.Time `json:"consumed_at,omitempty"`
}

func ToResponse(e RegionalException) ExceptionResponse {
	return ExceptionResponse{
		ID:          e.ID,
		GuardID:     e.GuardID,
		PostID:      e.PostID,
		Reason:      e.Reason,
		Status:      e.Status,
		RequestedBy: e.RequestedBy,
		RequestedAt: e.RequestedAt,
		DecidedBy:   e.DecidedBy,
		DecidedAt:   e.DecidedAt,
		ConsumedAt:  e.ConsumedAt,
	}
}
