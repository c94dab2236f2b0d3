package engine

import (
	"github.com/lixenwraith/vi-pong/core"
)

// QueryableStore provides the type-erased operations the query builder
// needs to intersect component sets
type QueryableStore interface {
	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Count returns the number of entities with this component
	Count() int

	// All returns all entities that have this component type
	All() []core.Entity
}
