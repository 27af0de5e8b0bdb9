package shift

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/post"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusEnded  Status = "ENDED"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusEnded
}

// SupervisorShift is one supervisor's watch at the operations center. At most
// one shift is ACTIVE at a time; a handover ends it with notes for the next.
type SupervisorShift struct {
	ID            string
	Supervisor    string
	Shift         post.Shift
	StartedAt     time.Time
	EndedAt       *time.Time
	Status        Status
	HandoverNotes string
	HandedOverTo  string
}

func (s SupervisorShift) Clone() SupervisorShift {
	out := s
	if s.EndedAt != nil {
		at := *s.EndedAt
		out.EndedAt = &at
	}
	return out
}
