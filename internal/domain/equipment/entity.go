package equipment

import "time"

type Kind string

const (
	KindWeapon  Kind = "WEAPON"
	KindVest    Kind = "VEST"
	KindRadio   Kind = "RADIO"
	KindVehicle Kind = "VEHICLE"
)

// Kinds lists every asset kind in display order.
var Kinds = []Kind{KindWeapon, KindVest, KindRadio, KindVehicle}

func (k Kind) Valid() bool {
	switch k {
	case KindWeapon, KindVest, KindRadio, KindVehicle:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable   Status = "AVAILABLE"
	StatusInUse       Status = "IN_USE"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return true
	}
	return false
}

// Equipment is a tracked operational asset. GuardID and CheckedOutAt are set
// only while the asset is IN_USE.
type Equipment struct {
	ID           string
	Kind         Kind
	AssetTag     string
	Status       Status
	GuardID      *string
	CheckedOutAt *time.Time
	RegisteredAt time.Time
	UpdatedAt    time.Time
}

func (e Equipment) Clone() Equipment {
	out := e
	if e.GuardID != nil {
		id := *e.GuardID
		out.GuardID = &id
	}
	if e.CheckedOutAt != nil {
		at := *e.CheckedOutAt
		out.CheckedOutAt = &at
	}
	return out
}

// CheckOut hands an available asset to guardID.
func (e *Equipment) CheckOut(guardID string, at time.Time) error {
	if e.Status != StatusAvailable {
		return ErrNotAvailable
	}
	e.Status = StatusInUse
	e.GuardID = &guardID
	e.CheckedOutAt = &at
	e.UpdatedAt = at
	return nil
}

// Return takes an asset back from its guard. Damaged assets go to maintenance.
func (e *Equipment) Return(damaged bool, at time.Time) error {
	if e.Status != StatusInUse {
		return ErrNotInUse
	}
	e.Status = StatusAvailable
	if damaged {
		e.Status = StatusMaintenance
	}
	e.GuardID = nil
	e.CheckedOutAt = nil
	e.UpdatedAt = at
	return nil
}

// Restore puts a serviced asset back into circulation.
func (e *Equipment) Restore(at time.Time) error {
	if e.Status != StatusMaintenance {
		return ErrNotInMaintenance
	}
	e.Status = StatusAvailable
	e.UpdatedAt = at
	return nil
}
