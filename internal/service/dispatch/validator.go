package dispatch

import (
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
)

// ValidateDispatch decides whether g may be sent to p. The guard's authorized
// regions are checked first; a usable regional exception for the exact pair is
// the only other way through. exceptions may be nil.
func ValidateDispatch(g *guard.Guard, p *post.Post, exceptions exception.Lookup) dispatch.Validation {
	if g == nil || p == nil {
		return dispatch.Validation{Reason: dispatch.ReasonInvalidInput}
	}

	if g.IsAuthorizedFor(p.Region) {
		return dispatch.Validation{OK: true}
	}

	if exceptions != nil {
		if e, ok := exceptions.Find(g.ID, p.ID); ok {
			return dispatch.Validation{
				OK:          true,
				Reason:      dispatch.ReasonAuthorizedByException,
				ExceptionID: e.ID,
			}
		}
	}

	return dispatch.Validation{Reason: dispatch.ReasonRegionNotAuthorized}
}
