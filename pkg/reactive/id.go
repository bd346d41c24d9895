package reactive

import "sync/atomic"

var idCounter atomic.Uint64

// nextID returns a process-unique identifier.
func nextID() uint64 {
	return idCounter.Add(1)
}
