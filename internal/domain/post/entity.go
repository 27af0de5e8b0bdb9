package post

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/region"
)

type Shift string

const (
	ShiftDay   Shift = "DAY"
	ShiftNight Shift = "NIGHT"
	Shift24H   Shift = "24H"
)

func (s Shift) Valid() bool {
	switch s {
	case ShiftDay, ShiftNight, Shift24H:
		return true
	}
	return false
}

// IsNight reports whether the shift earns the night-aptitude bonus.
func (s Shift) IsNight() bool {
	return s == ShiftNight
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Post is a client site (posto) staffed by guards. Region never changes after
// activation.
type Post struct {
	ID                string
	Name              string
	Client            string
	Address           string
	Region            region.Region
	State             region.State
	RequiredHeadcount int
	Risk              RiskLevel
	Shift             Shift
	Latitude          float64
	Longitude         float64
	RadiusMeters      float64
	Critical          bool
	Status            Status
	ActivatedAt       time.Time
}

func (p *Post) IsActive() bool {
	return p.Status == StatusActive
}
