package exception

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// RegionalException is an override that lets one guard work one post outside
// the guard's authorized regions. It is never folded into the guard's region
// set; an approved exception authorizes a single dispatch and is then consumed.
type RegionalException struct {
	ID          string
	GuardID     string
	PostID      string
	Reason      string
	Status      Status
	RequestedBy string
	RequestedAt time.Time
	DecidedBy   *string
	DecidedAt   *time.Time
	ConsumedAt  *time.Time
}

// Usable reports whether the exception can still authorize a dispatch.
func (e *RegionalException) Usable() bool {
	return e.Status == StatusApproved && e.ConsumedAt == nil
}

func (e RegionalException) Clone() RegionalException {
	out := e
	if e.DecidedBy != nil {
		by := *e.DecidedBy
		out.DecidedBy = &by
	}
	if e.DecidedAt != nil {
		at := *e.DecidedAt
		out.DecidedAt = &at
	}
	if e.ConsumedAt != nil {
		at := *e.ConsumedAt
		out.ConsumedAt = &at
	}
	return out
}

// Lookup finds a usable exception for a guard and post pair.
type Lookup interface {
	Find(guardID, postID string) (RegionalException, bool)
}

// Set is an immutable snapshot of usable exceptions keyed by guard and post.
type Set map[[2]string]RegionalException

// NewSet keeps only the usable exceptions. When several match the same pair the
// oldest request wins.
func NewSet(exceptions []RegionalException) Set {
	set := make(Set)
	for _, e := range exceptions {
		if !e.Usable() {
			continue
		}
		key := [2]string{e.GuardID, e.PostID}
		if _, ok := set[key]; ok {
			continue
		}
		set[key] = e
	}
	return set
}

func (s Set) Find(guardID, postID string) (RegionalException, bool) {
	e, ok := s[[2]string{guardID, postID}]
	return e, ok
}
