package audit

import "errors"

var (
	ErrUnknownAction     = errors.New("unknown audit action")
	ErrUnknownEntityType = errors.New("unknown audit entity type")
)
