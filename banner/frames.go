package banner

// FrameID identifies a pending frame request
type FrameID uint64

// FrameRequester is the host's next-frame primitive
type FrameRequester interface {
	// RequestFrame schedules fn to run on the next host frame
	RequestFrame(fn func()) FrameID

	// CancelFrame drops a pending request; unknown ids are ignored
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameRequester driven by explicit Pump calls, one per
// host frame. It is not safe for concurrent use; hosts pump it from the
// goroutine that owns the surface.
type FrameQueue struct {
	pending []pendingFrame
	batch   []pendingFrame // requests being run by the current Pump
	nextID  FrameID
}

// NewFrameQueue creates an empty queue
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{
		pending: make([]pendingFrame, 0, 4),
	}
}

// RequestFrame queues fn for the next Pump
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame removes a queued request. A request in the batch of a Pump
// that is still running is skipped as well.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.batch {
		if q.batch[i].id == id {
			q.batch[i].fn = nil
			return
		}
	}
}

// Pump runs the callbacks queued before the call. Callbacks requested while
// pumping wait for the next Pump. Returns the number of callbacks run.
func (q *FrameQueue) Pump() int {
	if len(q.pending) == 0 {
		return 0
	}
	q.batch = q.pending
	q.pending = make([]pendingFrame, 0, cap(q.batch))
	defer func() { q.batch = nil }()

	ran := 0
	for i := range q.batch {
		fn := q.batch[i].fn
		if fn == nil {
			continue
		}
		q.batch[i].fn = nil
		fn()
		ran++
	}
	return ran
}

// Pending returns the number of queued requests
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
