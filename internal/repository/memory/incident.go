package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
)

type incidentRepository struct {
	mu        sync.RWMutex
	order     []string
	incidents map[string]incident.Incident
}

// NewIncidentRepository creates an empty incident store
func NewIncidentRepository() incident.IncidentRepository {
	return &incidentRepository{incidents: make(map[string]incident.Incident)}
}

func (r *incidentRepository) Create(ctx context.Context, i incident.Incident) (incident.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	r.incidents[i.ID] = i.Clone()
	r.order = append(r.order, i.ID)
	return i.Clone(), nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id string) (incident.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.incidents[id]
	if !ok {
		return incident.Incident{}, incident.ErrIncidentNotFound
	}
	return i.Clone(), nil
}

// List returns matching incidents newest first
func (r *incidentRepository) List(ctx context.Context, filter incident.IncidentFilter) ([]incident.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]incident.Incident, 0, len(r.order))
	for k := len(r.order) - 1; k >= 0; k-- {
		i := r.incidents[r.order[k]]
		if filter.Status != nil && i.Status != *filter.Status {
			continue
		}
		if filter.PostID != nil && i.PostID != *filter.PostID {
			continue
		}
		out = append(out, i.Clone())
	}
	return out, nil
}

func (r *incidentRepository) Update(ctx context.Context, id string, fn func(i *incident.Incident) error) (incident.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.incidents[id]
	if !ok {
		return incident.Incident{}, incident.ErrIncidentNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.incidents[id] = working
	return working.Clone(), nil
}
