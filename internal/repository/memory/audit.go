package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
)

// auditRepository is append-only. There is no way to change or drop an entry
// once it is stored.
type auditRepository struct {
	mu      sync.RWMutex
	entries []audit.Entry
}

// NewAuditRepository creates an empty audit log
func NewAuditRepository() audit.AuditRepository {
	return &auditRepository{}
}

func (r *auditRepository) Append(ctx context.Context, entry audit.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	r.entries = append(r.entries, cloneEntry(entry))
	return nil
}

// List returns matching entries newest first
func (r *auditRepository) List(ctx context.Context, filter audit.EntryFilter) ([]audit.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]audit.Entry, 0)
	for k := len(r.entries) - 1; k >= 0; k-- {
		e := r.entries[k]
		if filter.Action != nil && e.Action != *filter.Action {
			continue
		}
		if filter.EntityType != nil && e.EntityType != *filter.EntityType {
			continue
		}
		if filter.EntityID != nil && e.EntityID != *filter.EntityID {
			continue
		}
		out = append(out, cloneEntry(e))
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func cloneEntry(e audit.Entry) audit.Entry {
	out := e
	if e.Previous != nil {
		v := *e.Previous
		out.Previous = &v
	}
	if e.New != nil {
		v := *e.New
		out.New = &v
	}
	return out
}
