package audit

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
)

// Action is the closed set of auditable decisions.
type Action string

const (
	ActionLoginSuccess          Action = "LOGIN_SUCCESS"
	ActionGuardAdmitted         Action = "GUARD_ADMITTED"
	ActionCheckIn               Action = "CHECKIN_GEO"
	ActionDocumentUpdated       Action = "DOCUMENT_UPDATED"
	ActionDocumentExpired       Action = "DOCUMENT_EXPIRED"
	ActionGuardStatusChanged    Action = "GUARD_STATUS_CHANGED"
	ActionGuardReassigned       Action = "GUARD_REASSIGNED"
	ActionPostActivated         Action = "POST_ACTIVATED"
	ActionAbsenceReported       Action = "ABSENCE_REPORTED"
	ActionAbsenceCovered        Action = "ABSENCE_COVERED"
	ActionAbsenceUncovered      Action = "ABSENCE_UNCOVERED"
	ActionSLABreach             Action = "SLA_BREACH"
	ActionExceptionRequested    Action = "EXCEPTION_REQUESTED"
	ActionExceptionDecided      Action = "EXCEPTION_DECIDED"
	ActionExceptionConsumed     Action = "EXCEPTION_CONSUMED"
	ActionParamUpdate           Action = "PARAM_UPDATE"
	ActionIncidentRegistered    Action = "INCIDENT_REGISTERED"
	ActionIncidentStatusChanged Action = "INCIDENT_STATUS_CHANGED"
	ActionEquipmentRegistered   Action = "EQUIPMENT_REGISTERED"
	ActionEquipmentCheckedOut   Action = "EQUIPMENT_CHECKED_OUT"
	ActionEquipmentReturned     Action = "EQUIPMENT_RETURNED"
	ActionEquipmentRestored     Action = "EQUIPMENT_RESTORED"
	ActionShiftStarted          Action = "SHIFT_STARTED"
	ActionShiftHandover         Action = "SHIFT_HANDOVER"
)

var actions = []Action{
	ActionLoginSuccess,
	ActionGuardAdmitted,
	ActionCheckIn,
	ActionDocumentUpdated,
	ActionDocumentExpired,
	ActionGuardStatusChanged,
	ActionGuardReassigned,
	ActionPostActivated,
	ActionAbsenceReported,
	ActionAbsenceCovered,
	ActionAbsenceUncovered,
	ActionSLABreach,
	ActionExceptionRequested,
	ActionExceptionDecided,
	ActionExceptionConsumed,
	ActionParamUpdate,
	ActionIncidentRegistered,
	ActionIncidentStatusChanged,
	ActionEquipmentRegistered,
	ActionEquipmentCheckedOut,
	ActionEquipmentReturned,
	ActionEquipmentRestored,
	ActionShiftStarted,
	ActionShiftHandover,
}

func (a Action) Valid() bool {
	for _, known := range actions {
		if a == known {
			return true
		}
	}
	return false
}

type EntityType string

const (
	EntitySession       EntityType = "SESSION"
	EntityGuard         EntityType = "GUARD"
	EntityPost          EntityType = "POST"
	EntityAbsence       EntityType = "ABSENCE"
	EntityException     EntityType = "REGIONAL_EXCEPTION"
	EntityConfiguration EntityType = "CONFIGURATION"
	EntityIncident      EntityType = "INCIDENT"
	EntityEquipment     EntityType = "EQUIPMENT"
	EntityShift         EntityType = "SUPERVISOR_SHIFT"
)

func (e EntityType) Valid() bool {
	switch e {
	case EntitySession, EntityGuard, EntityPost, EntityAbsence,
		EntityException, EntityConfiguration, EntityIncident,
		EntityEquipment, EntityShift:
		return true
	}
	return false
}

// Actor identifies who made an audited decision.
type Actor struct {
	Name string    `json:"name"`
	Role auth.Role `json:"role"`
}

// SystemActor is used when no console session is attached, e.g. background jobs.
var SystemActor = Actor{Name: "SISTEMA", Role: auth.RoleAuditor}

// Entry is an immutable audit record. Previous and New hold JSON text.
type Entry struct {
	ID         string
	Actor      Actor
	Action     Action
	EntityType EntityType
	EntityID   string
	Previous   *string
	New        *string
	Timestamp  time.Time
}
