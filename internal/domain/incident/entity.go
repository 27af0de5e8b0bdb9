package incident

import "time"

type Kind string

const (
	KindAssault          Kind = "ASSAULT"
	KindIntrusion        Kind = "INTRUSION"
	KindThreat           Kind = "THREAT"
	KindMedicalEmergency Kind = "MEDICAL_EMERGENCY"
	KindPolice           Kind = "POLICE"
	KindEquipmentFailure Kind = "EQUIPMENT_FAILURE"
)

func (k Kind) Valid() bool {
	switch k {
	case KindAssault, KindIntrusion, KindThreat, KindMedicalEmergency, KindPolice, KindEquipmentFailure:
		return true
	}
	return false
}

type Criticality string

const (
	CriticalityLow      Criticality = "LOW"
	CriticalityMedium   Criticality = "MEDIUM"
	CriticalityHigh     Criticality = "HIGH"
	CriticalityCritical Criticality = "CRITICAL"
)

func (c Criticality) Valid() bool {
	switch c {
	case CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusClosed     Status = "CLOSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// CanTransitionTo allows OPEN -> IN_PROGRESS -> CLOSED and OPEN -> CLOSED.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusOpen:
		return next == StatusInProgress || next == StatusClosed
	case StatusInProgress:
		return next == StatusClosed
	}
	return false
}

// Incident is a security occurrence reported at a post.
type Incident struct {
	ID           string
	Kind         Kind
	Criticality  Criticality
	PostID       string
	GuardID      string
	OccurredAt   time.Time
	Description  string
	ActionsTaken []string
	Status       Status
	Operator     string
}

func (i Incident) Clone() Incident {
	out := i
	out.ActionsTaken = append([]string(nil), i.ActionsTaken...)
	return out
}
