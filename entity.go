package ecs

// Entity identifies a row across a World's per-entity tables. It is a plain,
// densely-allocated 32-bit index with no generation counter: a destroyed id
// may be handed back out verbatim by a later CreateEntity call. See
// DESIGN.md for why this library does not split Entity into an
// (index, generation) pair.
type Entity uint32

// Listener is called synchronously whenever a component is added to or
// removed from an entity, or when an entity is destroyed (in which case it
// fires once per entity with changed == mask, the entity's full mask just
// before destruction, signalling bulk departure). Listeners must not mutate the World that invoked them.
type Listener func(e Entity, mask Mask, changed Mask)
