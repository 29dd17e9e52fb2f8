package datasource

import (
	"fmt"

	"github.com/ignite/campaign-chat/internal/domain"
)

// Get returns one connector's current state.
func (r *Registry) Get(id domain.SourceID) (domain.DataSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ds, ok := r.sources[id]
	if !ok {
		return domain.DataSource{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ds, nil
}
