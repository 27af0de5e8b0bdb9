package post

import "errors"

var (
	ErrPostNotFound        = errors.New("post not found")
	ErrRegionStateMismatch = errors.New("region does not belong to the declared state")
	ErrPostInactive        = errors.New("post is inactive")
)
