package guard

import (
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

const (
	MinAuthorizedRegions = 1
	MaxAuthorizedRegions = 4
)

// ========================================
// ADMISSION
// ========================================

type AdmitGuardRequest struct {
	Name              string          `json:"name"`
	Registration      string          `json:"registration"`
	CPF               string          `json:"cpf"`
	Position          string          `json:"position"`
	Phone             string          `json:"phone"`
	Crew              Crew            `json:"crew"`
	HomeRegion        region.Region   `json:"home_region"`
	AuthorizedRegions []region.Region `json:"authorized_regions"`
}

func (r *AdmitGuardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration is required",
		})
	}

	if !validator.IsValidCPF(r.CPF) {
		errs = append(errs, validator.ValidationError{
			Field:   "cpf",
			Message: "cpf must have 11 digits",
		})
	}

	if !r.Crew.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "crew",
			Message: "crew must be EVEN or ODD",
		})
	}

	if !r.HomeRegion.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "home_region",
			Message: "home_region is required",
		})
	}

	n := len(r.AuthorizedRegions)
	if n < MinAuthorizedRegions || n > MaxAuthorizedRegions {
		errs = append(errs, validator.ValidationError{
			Field:   "authorized_regions",
			Message: "between 1 and 4 authorized regions are required",
		})
	} else if !region.Contains(r.AuthorizedRegions, region.PlanoPiloto) {
		errs = append(errs, validator.ValidationError{
			Field:   "authorized_regions",
			Message: ErrPrimaryRegionMandatory.Error(),
		})
	} else if hasDuplicate(r.AuthorizedRegions) {
		errs = append(errs, validator.ValidationError{
			Field:   "authorized_regions",
			Message: "authorized_regions must not repeat",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.Name = strings.ToUpper(strings.TrimSpace(r.Name))
	r.Registration = strings.TrimSpace(r.Registration)
	r.CPF = validator.DigitsOnly(r.CPF)
	if validator.IsEmpty(r.Position) {
		r.Position = "Vigilante"
	}
	return nil
}

func hasDuplicate(regions []region.Region) bool {
	seen := make(map[region.Region]struct{}, len(regions))
	for _, r := range regions {
		if _, ok := seen[r]; ok {
			return true
		}
		seen[r] = struct{}{}
	}
	return false
}

type TravelTime struct {
	Region   region.Region `json:"region"`
	Minutes  int           `json:"minutes"`
	Exceeded bool          `json:"exceeded"`
}

type AdmissionResponse struct {
	Guard       GuardResponse `json:"guard"`
	TravelLimit int           `json:"travel_limit_minutes"`
	TravelTimes []TravelTime  `json:"travel_times"`
}

// ========================================
// CHECK-IN / STATUS / DOCUMENTS
// ========================================

type CheckInRequest struct {
	GuardID   string  `json:"guard_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GuardID) {
		errs = append(errs, validator.ValidationError{
			Field:   "guard_id",
			Message: "guard_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	GuardID string `json:"-"`
	Status  Status `json:"status"`
	Reason  string `json:"reason"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of ACTIVE, ON_LEAVE, VACATION, BLOCKED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDocumentRequest struct {
	GuardID    string       `json:"-"`
	Kind       DocumentKind `json:"kind"`
	ValidUntil string       `json:"valid_until"` // YYYY-MM-DD

	validUntil time.Time
}

func (r *UpdateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "unknown document kind",
		})
	}

	date, ok := validator.IsValidDate(r.ValidUntil)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_until",
			Message: "valid_until must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	r.validUntil = date
	return nil
}

// ParsedValidUntil is available after a successful Validate.
func (r *UpdateDocumentRequest) ParsedValidUntil() time.Time {
	return r.validUntil
}

// ========================================
// QUERY / RESPONSE
// ========================================

type GuardFilter struct {
	Query  *string `json:"q,omitempty"` // name, registration or CPF
	Crew   *Crew   `json:"crew,omitempty"`
	Status *Status `json:"status,omitempty"`
}

type DocumentResponse struct {
	Kind       DocumentKind   `json:"kind"`
	ValidUntil string         `json:"valid_until"`
	Status     DocumentStatus `json:"status"`
}

type GuardResponse struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Registration      string             `json:"registration"`
	CPF               string             `json:"cpf"`
	Position          string             `json:"position"`
	Phone             string             `json:"phone,omitempty"`
	Crew              Crew               `json:"crew"`
	HomeRegion        region.Region      `json:"home_region"`
	AuthorizedRegions []region.Region    `json:"authorized_regions"`
	Status            Status             `json:"status"`
	OvertimeHours     float64            `json:"overtime_hours"`
	FatigueIndex      float64            `json:"fatigue_index"`
	NightApt          bool               `json:"night_apt"`
	CurrentPostID     *string            `json:"current_post_id,omitempty"`
	CheckIn           CheckInState       `json:"check_in"`
	LastCheckInAt     *time.Time         `json:"last_check_in_at,omitempty"`
	Documents         []DocumentResponse `json:"documents"`
	AdmittedAt        time.Time          `json:"admitted_at"`
}

func ToResponse(g Guard) GuardResponse {
	docs := make([]DocumentResponse, 0, len(g.Documents))
	for _, d := range g.Documents {
		docs = append(docs, DocumentResponse{
			Kind:       d.Kind,
			ValidUntil: d.ValidUntil.Format("2006-01-02"),
			Status:     d.Status,
		})
	}
	return GuardResponse{
		ID:                g.ID,
		Name:              g.Name,
		Registration:      g.Registration,
		CPF:               g.CPF,
		Position:          g.Position,
		Phone:             g.Phone,
		Crew:              g.Crew,
		HomeRegion:        g.HomeRegion,
		AuthorizedRegions: g.AuthorizedRegions,
		Status:            g.Status,
		OvertimeHours:     g.OvertimeHours,
		FatigueIndex:      g.FatigueIndex,
		NightApt:          g.NightApt,
		CurrentPostID:     g.CurrentPostID,
		CheckIn:           g.CheckIn,
		LastCheckInAt:     g.LastCheckInAt,
		Documents:         docs,
		AdmittedAt:        g.AdmittedAt,
	}
}

// ComplianceSweepResult counts what one document sweep changed.
type ComplianceSweepResult struct {
	Checked int      `json:"checked"`
	Expired int      `json:"expired"`
	Alerts  int      `json:"alerts"`
	Blocked []string `json:"blocked"`
}
