package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
	"github.com/srad-secure/srad-backend-go/internal/pkg/cron"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, err.Error())

	// Not found
	case errors.Is(err, guard.ErrGuardNotFound):
		NotFound(w, "Guard not found")
	case errors.Is(err, post.ErrPostNotFound):
		NotFound(w, "Post not found")
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence not found")
	case errors.Is(err, exception.ErrExceptionNotFound):
		NotFound(w, "Regional exception not found")
	case errors.Is(err, incident.ErrIncidentNotFound):
		NotFound(w, "Incident not found")
	case errors.Is(err, guard.ErrDocumentNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, cron.ErrUnknownJob):
		NotFound(w, err.Error())
	case errors.Is(err, equipment.ErrEquipmentNotFound):
		NotFound(w, "Equipment not found")
	case errors.Is(err, shift.ErrShiftNotFound), errors.Is(err, shift.ErrNoActiveShift):
		NotFound(w, err.Error())

	// Conflicts with current state
	case errors.Is(err, guard.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, guard.ErrRegistrationExists):
		Conflict(w, "Registration number already exists")
	case errors.Is(err, guard.ErrStatusUnchanged):
		Conflict(w, err.Error())
	case errors.Is(err, absence.ErrAbsenceNotPending):
		Conflict(w, "Absence is no longer pending")
	case errors.Is(err, exception.ErrAlreadyDecided):
		Conflict(w, "Regional exception already decided")
	case errors.Is(err, exception.ErrAlreadyAuthorized):
		Conflict(w, err.Error())
	case errors.Is(err, dispatch.ErrAlreadyAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, equipment.ErrAssetTagExists):
		Conflict(w, "Asset tag already registered")
	case errors.Is(err, equipment.ErrNotAvailable),
		errors.Is(err, equipment.ErrNotInUse),
		errors.Is(err, equipment.ErrNotInMaintenance),
		errors.Is(err, shift.ErrShiftAlreadyActive):
		Conflict(w, err.Error())

	// Business rule rejections
	case errors.Is(err, guard.ErrTravelLimitExceeded),
		errors.Is(err, guard.ErrPrimaryRegionMandatory),
		errors.Is(err, guard.ErrNotAssignedToPost),
		errors.Is(err, dispatch.ErrRegionNotAuthorized),
		errors.Is(err, dispatch.ErrSameCrew),
		errors.Is(err, dispatch.ErrGuardNotActive),
		errors.Is(err, dispatch.ErrAbsentGuard),
		errors.Is(err, exception.ErrNotUsable),
		errors.Is(err, incident.ErrInvalidTransition),
		errors.Is(err, post.ErrPostInactive),
		errors.Is(err, equipment.ErrGuardNotActive),
		errors.Is(err, shift.ErrSameSupervisor):
		UnprocessableEntity(w, err.Error())

	// Malformed input that passed decoding
	case errors.Is(err, dispatch.ErrInvalidDispatchInput),
		errors.Is(err, exception.ErrInvalidDecision),
		errors.Is(err, settings.ErrUnknownParameter),
		errors.Is(err, post.ErrRegionStateMismatch),
		errors.Is(err, region.ErrUnknownRegion),
		errors.Is(err, region.ErrUnknownState),
		errors.Is(err, audit.ErrUnknownAction),
		errors.Is(err, audit.ErrUnknownEntityType):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
