package ecs

import (
	"reflect"
	"unsafe"
)

// MaxComponents is the maximum number of distinct component types that may
// ever be observed by a process. It is a configurable constant in the sense
// that changing it and recompiling changes the size of every Mask and
// per-type store array; it is not a runtime parameter.
const MaxComponents = 1024

// ComponentID is a unique, stable identifier for a component type, assigned
// in first-observation order. The registry is process-global: two Worlds in
// the same process share the id space, though each keeps its own component
// storage.
type ComponentID uint32

// componentInfo is everything the registry remembers about a registered
// type, keyed by its ComponentID via that type's position in registry.
type componentInfo struct {
	typ  reflect.Type
	size uintptr
}

var (
	typeToID = make(map[reflect.Type]ComponentID, 64)
	registry []componentInfo
)

// ResetGlobalRegistry clears the global component registry. It exists for
// tests that want a fresh id space between otherwise-independent worlds;
// production code should never need it, since ids remain valid and stable
// for the life of the process.
func ResetGlobalRegistry() {
	typeToID = make(map[reflect.Type]ComponentID, 64)
	registry = registry[:0]
}

// RegisterComponent registers T and returns its ComponentID, assigning a new
// one — the type's index in registry — in observation order if T has not
// been seen before. Registering an already-known type is a cheap no-op that
// returns the existing id. Panics (CapacityExceeded) if more than
// MaxComponents distinct types are ever observed.
func RegisterComponent[T any]() ComponentID {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := typeToID[typ]; ok {
		return id
	}
	if len(registry) >= MaxComponents {
		panic(errTooManyComponentTypes(typ.Name()))
	}
	id := ComponentID(len(registry))
	var zero T
	typeToID[typ] = id
	registry = append(registry, componentInfo{typ: typ, size: unsafe.Sizeof(zero)})
	return id
}

// GetID returns the ComponentID for T, registering it first if necessary.
// Unlike a strict GetID that panics on an unregistered type, this registers
// lazily: component types in this design have no required up-front
// registration step, since any AddComponent[T] call is itself a valid first
// observation of T.
func GetID[T any]() ComponentID {
	return RegisterComponent[T]()
}

// TryGetID returns the ComponentID for T without registering it, and false
// if T has not yet been observed.
func TryGetID[T any]() (ComponentID, bool) {
	id, ok := typeToID[reflect.TypeOf((*T)(nil)).Elem()]
	return id, ok
}

// FilterOf returns the single-bit Mask identifying T, registering T first if
// necessary.
func FilterOf[T any]() Mask {
	return maskOf(GetID[T]())
}

// SizeOf returns the size in bytes of T's underlying representation,
// registering T first if necessary. This is informational only: Go stores
// component values directly rather than addressing them by byte size.
func SizeOf[T any]() uintptr {
	return registry[GetID[T]()].size
}
