package ecs

import queue "gopkg.in/eapache/queue.v1"

// entityQueue is a thin, typed wrapper around a ring-buffer FIFO queue,
// backing the World's recycled-entity-id policy (§4.4: "pop the front as
// the new id"). The underlying queue.v1 package is interface{}-based (it
// predates generics); this wrapper confines the boxing/unboxing to one
// place so the rest of World can deal in plain Entity values.
type entityQueue struct {
	q *queue.Queue
}

func newEntityQueue() entityQueue {
	return entityQueue{q: queue.New()}
}

func (q *entityQueue) push(e Entity) {
	q.q.Add(e)
}

func (q *entityQueue) empty() bool {
	return q.q.Length() == 0
}

// pop removes and returns the front of the queue. Callers must check empty()
// first; popping an empty queue panics, matching queue.v1's own contract.
func (q *entityQueue) pop() Entity {
	return q.q.Remove().(Entity)
}

func (q *entityQueue) len() int {
	return q.q.Length()
}
