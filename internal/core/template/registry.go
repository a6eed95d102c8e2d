package template

import (
	"sort"

	"leadmail.app/pkg/errors"
)

// Registry holds the validated template sets the service renders from
type Registry struct {
	sets map[SetID]Set
}

// NewRegistry validates every set and indexes it by identifier
func NewRegistry(sets ...Set) (*Registry, error) {
	r := &Registry{sets: make(map[SetID]Set, len(sets))}
	for _, set := range sets {
		if !set.ID.IsValid() {
			return nil, errors.NewValidationError("unknown template set: " + set.ID.String())
		}
		if _, exists := r.sets[set.ID]; exists {
			return nil, errors.NewValidationError("duplicate template set: " + set.ID.String())
		}
		if err := set.Validate(); err != nil {
			return nil, err
		}
		r.sets[set.ID] = set
	}
	return r, nil
}

// Get returns the set registered under id
func (r *Registry) Get(id SetID) (Set, bool) {
	set, ok := r.sets[id]
	return set, ok
}

// IDs returns registered identifiers in ascending order
func (r *Registry) IDs() []SetID {
	ids := make([]SetID, 0, len(r.sets))
	for id := range r.sets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Render renders the set registered under id
func (r *Registry) Render(id SetID, fields Fields) (Rendered, error) {
	set, ok := r.sets[id]
	if !ok {
		return Rendered{}, errors.NewNotFoundError("template set not found: " + id.String())
	}
	return Render(set, fields)
}
