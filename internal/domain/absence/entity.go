package absence

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
)

// Status follows PENDING -> COVERED or PENDING -> UNCOVERED. Both targets are
// terminal.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCovered   Status = "COVERED"
	StatusUncovered Status = "UNCOVERED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCovered, StatusUncovered:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCovered || s == StatusUncovered
}

// Absence (falta) is a shift left open by a guard. PostID and GuardID are weak
// references and may dangle.
type Absence struct {
	ID            string
	Date          time.Time
	PostID        string
	GuardID       string
	Crew          guard.Crew
	Shift         post.Shift
	Status        Status
	SubstituteID  *string
	Reason        string
	ReportedAt    time.Time
	ResolvedAt    *time.Time
	SLABreachedAt *time.Time
}

// Clone returns a copy that shares no pointers with the receiver.
func (a Absence) Clone() Absence {
	out := a
	if a.SubstituteID != nil {
		id := *a.SubstituteID
		out.SubstituteID = &id
	}
	if a.ResolvedAt != nil {
		at := *a.ResolvedAt
		out.ResolvedAt = &at
	}
	if a.SLABreachedAt != nil {
		at := *a.SLABreachedAt
		out.SLABreachedAt = &at
	}
	return out
}
