package audit

import "time"

// RecordRequest describes one state-changing decision. Previous and New are
// serialized to JSON; nil values are omitted.
type RecordRequest struct {
	Action     Action
	EntityType EntityType
	EntityID   string
	Previous   any
	New        any
}

type EntryFilter struct {
	Action     *Action     `json:"action,omitempty"`
	EntityType *EntityType `json:"entity_type,omitempty"`
	EntityID   *string     `json:"entity_id,omitempty"`
	Limit      int         `json:"limit"`
}

type EntryResponse struct {
	ID         string     `json:"id"`
	ActorName  string     `json:"actor_name"`
	ActorRole  string     `json:"actor_role"`
	Action     Action     `json:"action"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	Previous   *string    `json:"previous_value,omitempty"`
	New        *string    `json:"new_value,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		ActorName:  e.Actor.Name,
		ActorRole:  string(e.Actor.Role),
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Previous:   e.Previous,
		New:        e.New,
		Timestamp:  e.Timestamp,
	}
}
