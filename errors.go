package ecs

import "fmt"

// errComponentIDTooLarge formats the panic message used when a ComponentID
// falls outside [0, MaxComponents). It should be unreachable in practice
// since RegisterComponent itself refuses to hand out such an id.
func errComponentIDTooLarge(id ComponentID) string {
	return fmt.Sprintf("ecs: component id %d exceeds maximum (%d)", id, MaxComponents)
}

// errTooManyComponentTypes formats the panic message raised by
// RegisterComponent once MaxComponents distinct types have been observed.
// This is the library's one fatal, non-recoverable error (CapacityExceeded
// in the design's error taxonomy); every other error condition is
// signalled through an ordinary (value, bool) or bool return.
func errTooManyComponentTypes(name string) string {
	return fmt.Sprintf("ecs: cannot register component %s: maximum number of component types (%d) reached", name, MaxComponents)
}
