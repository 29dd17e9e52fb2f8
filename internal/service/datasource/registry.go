package datasource

import (
	"fmt"
	"sync"

	"github.com/ignite/campaign-chat/internal/domain"
)

// Registry holds the connection state of every connector. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []domain.SourceID
	sources map[domain.SourceID]domain.DataSource
}

// NewRegistry returns a registry seeded with the fixed connector set, all
// disconnected.
func NewRegistry() *Registry {
	r := &Registry{
		order:   domain.SourceIDs(),
		sources: make(map[domain.SourceID]domain.DataSource),
	}
	for _, id := range r.order {
		r.sources[id] = domain.DataSource{
			ID:     id,
			Name:   id.DisplayName(),
			Status: domain.StatusDisconnected,
		}
	}
	return r
}

// List returns a snapshot of every connector in catalog order.
func (r *Registry) List() []domain.DataSource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.DataSource, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sources[id])
	}
	return out
}

// Connected returns the ids of connected sources in catalog order.
func (r *Registry) Connected() domain.SourceSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out domain.SourceSet
	for _, id := range r.order {
		ds := r.sources[id]
		if ds.IsConnected() {
			out = append(out, id)
		}
	}
	return out
}

// Connect marks id connected. Concurrent Connect/Disconnect calls are
// applied in lock order; the last one wins.
func (r *Registry) Connect(id domain.SourceID) (domain.DataSource, error) {
	return r.update(id, func(ds *domain.DataSource) {
		ds.Status = domain.StatusConnected
	})
}

// Disconnect marks id disconnected and clears its last-updated time and
// data point count.
func (r *Registry) Disconnect(id domain.SourceID) (domain.DataSource, error) {
	return r.update(id, func(ds *domain.DataSource) {
		ds.Status = domain.StatusDisconnected
		ds.LastUpdated = nil
		ds.DataPoints = nil
	})
}

func (r *Registry) update(id domain.SourceID, fn func(*domain.DataSource)) (domain.DataSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ds, ok := r.sources[id]
	if !ok {
		return domain.DataSource{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	fn(&ds)
	r.sources[id] = ds
	return ds, nil
}
