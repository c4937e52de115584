package memlz

import "sync"

// statePool backs the stateless Compress/Decompress wrappers so each call
// does not pay for a fresh ~768 KiB session allocation.
var statePool = sync.Pool{
	New: func() any {
		return &State{}
	},
}

// acquireState returns a reset session from the pool.
func acquireState() *State {
	s := statePool.Get().(*State)
	s.Reset()
	return s
}

// releaseState returns a session to the pool.
func releaseState(s *State) {
	if s == nil {
		return
	}

	statePool.Put(s)
}
