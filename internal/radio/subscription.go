package radio

const errorBufferSize = 16

// Subscription provides event channels for a subscriber.
//
// Changed is coalescing: one pending signal means "read Snapshot again".
type Subscription struct {
	Changed <-chan struct{}
	Errors  <-chan error
	Done    <-chan struct{}

	changedCh chan struct{}
	errorCh   chan error
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		changedCh: make(chan struct{}, 1),
		errorCh:   make(chan error, errorBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.Changed = s.changedCh
	s.Errors = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

// sendChanged signals a change (non-blocking).
func (s *Subscription) sendChanged() {
	select {
	case s.changedCh <- struct{}{}:
	default:
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(err error) {
	select {
	case s.errorCh <- err:
	default:
		// Drop if buffer full
	}
}
