package ecs

// System incrementally maintains the set of entities matching a declarative
// component filter: an inclusion mask (must have every bit) and two
// exclusion masks (must have none of Xa's bits; must not have its entire
// mask contained within Xe, when Xe is non-zero — an entity that also
// carries a component outside Xe is not excluded by Xe alone). It
// subscribes to its World's add/remove listeners at construction and keeps
// its matching set current without rescanning, except when Rescan is
// called explicitly.
type System struct {
	world      *World
	matching   *SparseSet[Entity]
	include    Mask
	excludeAny Mask
	excludeAll Mask
}

// NewSystem constructs a System against w with empty inclusion/exclusion
// masks (accepting every mask until Match/ExcludeAny/ExcludeAll narrow
// them) and subscribes its listeners. An entity is considered only when a
// component is added to or removed from it, or on Rescan; CreateEntity
// alone notifies no listener.
func NewSystem(w *World) *System {
	s := &System{
		world:    w,
		matching: NewSparseSet[Entity](0),
	}
	w.SubscribeOnAdd(s.onAdd)
	w.SubscribeOnRemove(s.onRemove)
	return s
}

// Match ORs FilterOf[T] into the system's inclusion mask: matching entities
// must have every component type passed across all Match calls.
func Match[T any](s *System) {
	s.include = s.include.Or(FilterOf[T]())
}

// ExcludeAny ORs FilterOf[T] into the system's exclusion-any mask: an entity
// with any of these component types, alone, is excluded.
func ExcludeAny[T any](s *System) {
	s.excludeAny = s.excludeAny.Or(FilterOf[T]())
}

// ExcludeAll ORs FilterOf[T] into the system's exclusion-all mask Xe. An
// entity is excluded only once its *entire* mask is contained within Xe
// (mask & Xe == mask): an entity that carries every ExcludeAll type but also
// carries some other, unlisted component is not excluded by this test alone
// (an empty exclusion-all mask excludes nothing).
func ExcludeAll[T any](s *System) {
	s.excludeAll = s.excludeAll.Or(FilterOf[T]())
}

// Matching returns the system's live matching set. Treat as read-only.
func (s *System) Matching() *SparseSet[Entity] {
	return s.matching
}

// onAdd re-evaluates e against maskAfter, the mask it now has, inserting it
// into or erasing it from the matching set. onRemove reuses it with the
// mask an entity has once a removal completes.
func (s *System) onAdd(e Entity, maskAfter, changed Mask) {
	if maskAfter.Intersects(s.excludeAny) {
		s.matching.Erase(e)
		return
	}
	if !s.excludeAll.IsZero() && s.excludeAll.IncludesAll(maskAfter) {
		s.matching.Erase(e)
		return
	}
	if maskAfter.IncludesAll(s.include) {
		s.matching.Insert(e)
	} else {
		s.matching.Erase(e)
	}
}

func (s *System) onRemove(e Entity, maskBefore, changed Mask) {
	// maskBefore still carries the removed bits; the entity's mask once the
	// removal completes is maskBefore without changed. Bulk destruction (see
	// World.DestroyEntity) dispatches changed == maskBefore after e has left
	// the live set, so a destroyed entity is always erased.
	if s.world.IsAlive(e) {
		s.onAdd(e, maskBefore.AndNot(changed), changed)
		return
	}
	s.matching.Erase(e)
}

// Rescan discards the current matching set and reconstitutes it from
// scratch by walking every live entity's mask. Semantics are identical to
// the listener-maintained set; this exists for bootstrapping a System
// against a World that already has entities (subscribing after the fact
// only sees future mutations) and for recovery after any suspected drift.
func (s *System) Rescan() {
	s.matching.Clear()
	for _, e := range s.world.entities.Values() {
		mask := s.world.EntityMask(e)
		if mask.Intersects(s.excludeAny) {
			continue
		}
		if !s.excludeAll.IsZero() && s.excludeAll.IncludesAll(mask) {
			continue
		}
		if mask.IncludesAll(s.include) {
			s.matching.Insert(e)
		}
	}
}
