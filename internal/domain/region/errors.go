package region

import "errors"

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownState  = errors.New("state must be DF or GO")
)
