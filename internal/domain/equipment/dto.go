package equipment

import (
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type RegisterEquipmentRequest struct {
	Kind     Kind   `json:"kind"`
	AssetTag string `json:"asset_tag"`
}

func (r *RegisterEquipmentRequest) Validate() error {
	var errs validator.ValidationErrors

	r.AssetTag = strings.ToUpper(strings.TrimSpace(r.AssetTag))
	if !r.Kind.Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "kind must be WEAPON, VEST, RADIO or VEHICLE"})
	}
	if validator.IsEmpty(r.AssetTag) {
		errs = append(errs, validator.ValidationError{Field: "asset_tag", Message: "asset_tag is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	ID      string `json:"-"`
	GuardID string `json:"guard_id"`
}

func (r *CheckOutRequest) Validate() error {
	if validator.IsEmpty(r.GuardID) {
		return validator.ValidationErrors{{Field: "guard_id", Message: "guard_id is required"}}
	}
	return nil
}

type ReturnRequest struct {
	ID      string `json:"-"`
	Damaged bool   `json:"damaged"`
}

type EquipmentFilter struct {
	Kind    *Kind   `json:"kind,omitempty"`
	Status  *Status `json:"status,omitempty"`
	GuardID *string `json:"guard_id,omitempty"`
}

type EquipmentResponse struct {
	ID           string     `json:"id"`
	Kind         Kind       `json:"kind"`
	AssetTag     string     `json:"asset_tag"`
	Status       Status     `json:"status"`
	GuardID      *string    `json:"guard_id,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	RegisteredAt time.Time  `json:"registered_at"`
}

func ToResponse(e Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:           e.ID,
		Kind:         e.Kind,
		AssetTag:     e.AssetTag,
		Status:       e.Status,
		GuardID:      e.GuardID,
		CheckedOutAt: e.CheckedOutAt,
		RegisteredAt: e.RegisteredAt,
	}
}

// KindSummary counts one asset kind by status.
type KindSummary struct {
	Kind        Kind `json:"kind"`
	Total       int  `json:"total"`
	Available   int  `json:"available"`
	InUse       int  `json:"in_use"`
	Maintenance int  `json:"maintenance"`
}

type SummaryResponse struct {
	Kinds []KindSummary `json:"kinds"`
	Total int           `json:"total"`
}

// Summarize counts items per kind, always listing every kind.
func Summarize(items []Equipment) SummaryResponse {
	index := make(map[Kind]*KindSummary, len(Kinds))
	out := SummaryResponse{Kinds: make([]KindSummary, len(Kinds))}
	for i, k := range Kinds {
		out.Kinds[i].Kind = k
		index[k] = &out.Kinds[i]
	}

	for _, e := range items {
		s, ok := index[e.Kind]
		if !ok {
			continue
		}
		s.Total++
		out.Total++
		switch e.Status {
		case StatusAvailable:
			s.Available++
		case StatusInUse:
			s.InUse++
		case StatusMaintenance:
			s.Maintenance++
		}
	}
	return out
}
