package equipment

import "errors"

var (
	ErrEquipmentNotFound = errors.New("equipment not found")
	ErrAssetTagExists    = errors.New("asset tag already registered")
	ErrNotAvailable      = errors.New("equipment is not available for checkout")
	ErrNotInUse          = errors.New("equipment is not checked out")
	ErrNotInMaintenance  = errors.New("equipment is not under maintenance")
	ErrGuardNotActive    = errors.New("equipment can only be checked out to an active guard")
)
