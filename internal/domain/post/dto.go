package post

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type ActivatePostRequest struct {
	Name              string        `json:"name"`
	Client            string        `json:"client"`
	Address           string        `json:"address"`
	Region            region.Region `json:"region"`
	State             region.State  `json:"state"`
	RequiredHeadcount int           `json:"required_headcount"`
	Risk              RiskLevel     `json:"risk"`
	Shift             Shift         `json:"shift"`
	Latitude          float64       `json:"latitude"`
	Longitude         float64       `json:"longitude"`
	RadiusMeters      float64       `json:"radius_meters"`
	Critical          bool          `json:"critical"`
}

func (r *ActivatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Client) {
		errs = append(errs, validator.ValidationError{Field: "client", Message: "client is required"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}

	if !r.State.Valid() {
		errs = append(errs, validator.ValidationError{Field: "state", Message: "state must be DF or GO"})
	}
	if !r.Region.Valid() {
		errs = append(errs, validator.ValidationError{Field: "region", Message: "region is required"})
	} else if r.State.Valid() && r.Region.State() != r.State {
		errs = append(errs, validator.ValidationError{Field: "region", Message: ErrRegionStateMismatch.Error()})
	}

	if r.RequiredHeadcount < 1 {
		errs = append(errs, validator.ValidationError{Field: "required_headcount", Message: "required_headcount must be at least 1"})
	}
	if r.Risk == "" {
		r.Risk = RiskMedium
	} else if !r.Risk.Valid() {
		errs = append(errs, validator.ValidationError{Field: "risk", Message: "risk must be LOW, MEDIUM, HIGH or CRITICAL"})
	}
	if !r.Shift.Valid() {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be DAY, NIGHT or 24H"})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	if !validator.IsFinite(r.RadiusMeters) || r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "radius_meters", Message: "radius_meters must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostFilter struct {
	Region *region.Region `json:"region,omitempty"`
	Status *Status        `json:"status,omitempty"`
}

type PostResponse struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Client            string        `json:"client"`
	Address           string        `json:"address"`
	Region            region.Region `json:"region"`
	State             region.State  `json:"state"`
	RequiredHeadcount int           `json:"required_headcount"`
	Risk              RiskLevel     `json:"risk"`
	Shift             Shift         `json:"shift"`
	Latitude          float64       `json:"latitude"`
	Longitude         float64       `json:"longitude"`
	RadiusMeters      float64       `json:"radius_meters"`
	Critical          bool          `json:"critical"`
	Status            Status        `json:"status"`
	ActivatedAt       time.Time     `json:"activated_at"`
}

func ToResponse(p Post) PostResponse {
	return PostResponse{
		ID:                p.ID,
		Name:              p.Name,
		Client:            p.Client,
		Address:           p.Address,
		Region:            p.Region,
		State:             p.State,
		RequiredHeadcount: p.RequiredHeadcount,
		Risk:              p.Risk,
		Shift:             p.Shift,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		RadiusMeters:      p.RadiusMeters,
		Critical:          p.Critical,
		Status:            p.Status,
		ActivatedAt:       p.ActivatedAt,
	}
}
