package dispatch

import (
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
)

// Reason explains the outcome of a dispatch validation.
type Reason string

const (
	ReasonNone                  Reason = ""
	ReasonInvalidInput          Reason = "INVALID_INPUT"
	ReasonRegionNotAuthorized   Reason = "REGION_NOT_AUTHORIZED"
	ReasonAuthorizedByException Reason = "AUTHORIZED_BY_EXCEPTION"
)

// Validation is the result of checking whether a guard may work a post.
// Failures are data, never errors.
type Validation struct {
	OK          bool   `json:"ok"`
	Reason      Reason `json:"reason,omitempty"`
	ExceptionID string `json:"exception_id,omitempty"`
}

// Err converts a failed validation into its sentinel error.
func (v Validation) Err() error {
	if v.OK {
		return nil
	}
	switch v.Reason {
	case ReasonRegionNotAuthorized:
		return ErrRegionNotAuthorized
	default:
		return ErrInvalidDispatchInput
	}
}

// Breakdown holds the contribution of each ranking term.
type Breakdown struct {
	Compliance       float64 `json:"compliance"`
	RegionMatch      float64 `json:"region_match"`
	OvertimeHeadroom float64 `json:"overtime_headroom"`
	Fatigue          float64 `json:"fatigue"`
	NightAptitude    float64 `json:"night_aptitude"`
}

func (b Breakdown) Total() float64 {
	return b.Compliance + b.RegionMatch + b.OvertimeHeadroom + b.Fatigue + b.NightAptitude
}

// Candidate is one ranked substitute.
type Candidate struct {
	Guard      guard.Guard
	Score      float64
	Breakdown  Breakdown
	Validation Validation
}
