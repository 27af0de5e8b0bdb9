package dashboard

import (
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

// ========== READINESS ==========

type ReadinessLabel string

const (
	ReadinessOperational ReadinessLabel = "OPERATIONAL"
	ReadinessAttention   ReadinessLabel = "ATTENTION"
	ReadinessCritical    ReadinessLabel = "CRITICAL"
)

// Penalties applied to a perfect readiness score of 100.
const (
	PendingAbsencePenalty  = 15
	OpenIncidentPenalty    = 20
	OutsideGeofencePenalty = 10
	ExpiredDocumentPenalty = 5
)

// ReadinessResponse summarises how ready the operation is right now
type ReadinessResponse struct {
	Score            int            `json:"score"`
	Label            ReadinessLabel `json:"label"`
	PendingAbsences  int            `json:"pending_absences"`
	OpenIncidents    int            `json:"open_incidents"`
	OutsideGeofence  int            `json:"outside_geofence"`
	ExpiredDocuments int            `json:"expired_documents"`
	ActiveGuards     int            `json:"active_guards"`
	ActivePosts      int            `json:"active_posts"`
}

// ReadinessScore floors at 0.
func ReadinessScore(pending, incidents, outside, expired int) int {
	score := 100 -
		pending*PendingAbsencePenalty -
		incidents*OpenIncidentPenalty -
		outside*OutsideGeofencePenalty -
		expired*ExpiredDocumentPenalty
	if score < 0 {
		return 0
	}
	return score
}

func LabelFor(score int) ReadinessLabel {
	switch {
	case score > 85:
		return ReadinessOperational
	case score > 60:
		return ReadinessAttention
	default:
		return ReadinessCritical
	}
}

// ========== OPERATIONAL MAP ==========

// PostStatusResponse is one post on the operational map
type PostStatusResponse struct {
	PostID       string        `json:"post_id"`
	Name         string        `json:"name"`
	Region       region.Region `json:"region"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	GuardIDs     []string      `json:"guard_ids"`
	Abandonment  bool          `json:"abandonment"`   // a guard is outside the geofence
	CARViolation bool          `json:"car_violation"` // a guard works outside their regions
	ViolatorIDs  []string      `json:"violator_ids,omitempty"`
}

// ========== CAPACITY SIMULATION ==========

type SimulationRequest struct {
	Region   region.Region `json:"region"`
	NewPosts int           `json:"new_posts"`
}

func (r *SimulationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Region.Valid() {
		errs = append(errs, validator.ValidationError{Field: "region", Message: "region is required"})
	}
	if r.NewPosts < 1 {
		errs = append(errs, validator.ValidationError{Field: "new_posts", Message: "new_posts must be at least 1"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GuardsPerPost staffs a post under the 12x36 rotation.
const GuardsPerPost = 2

type SimulationResponse struct {
	Region  region.Region `json:"region"`
	Pool    int           `json:"pool"`
	Needed  int           `json:"needed"`
	Ratio   float64       `json:"ratio"`
	Balance int           `json:"balance"` // pool minus needed; negative is a deficit
	Viable  bool          `json:"viable"`
}
