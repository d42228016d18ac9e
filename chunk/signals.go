package chunk

// UnloadChunks asks the manager to re-evaluate loaded chunks. Force drops
// and regenerates every chunk; otherwise only out-of-range chunks are
// unloaded and missing ones loaded.
type UnloadChunks struct {
	Force bool
}

// Signals is the world resource carrying pending streaming requests.
// Senders queue signals during the frame; the manager drains them.
type Signals struct {
	queue []UnloadChunks
}

// Send queues a streaming request.
func (s *Signals) Send(sig UnloadChunks) {
	s.queue = append(s.queue, sig)
}

// Pending returns queued signals without consuming them.
func (s *Signals) Pending() []UnloadChunks {
	return s.queue
}

// Drain returns queued signals and clears the queue.
func (s *Signals) Drain() []UnloadChunks {
	out := s.queue
	s.queue = nil
	return out
}
