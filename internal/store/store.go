package store

import "sync"

// Listener observes the state after each dispatch. It runs outside the store
// lock and may dispatch, but must not block.
type Listener func(State)

// DispatchHook sees every applied action together with the state around it.
// It runs under the store lock.
type DispatchHook func(action Action, before, after State)

type Option func(*Store)

// WithInitialState seeds the store with s instead of InitialState().
func WithInitialState(s State) Option {
	return func(st *Store) {
		st.state = s.Clone()
	}
}

func WithDispatchHook(h DispatchHook) Option {
	return func(st *Store) {
		st.hook = h
	}
}

// Store owns one session's state. All changes go through Dispatch.
type Store struct {
	mu        sync.Mutex
	state     State
	hook      DispatchHook
	listeners map[uint64]Listener
	nextID    uint64
}

func New(opts ...Option) *Store {
	s := &Store{
		state:     InitialState(),
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies actions in order as one atomic step and returns the
// resulting state. Listeners are notified once.
func (s *Store) Dispatch(actions ...Action) State {
	next, _ := s.DispatchIf(nil, actions...)
	return next
}

// DispatchIf applies actions only if guard accepts the current state. The
// check and the update happen under the same lock. A nil guard always passes.
func (s *Store) DispatchIf(guard func(State) bool, actions ...Action) (State, bool) {
	s.mu.Lock()
	if guard != nil && !guard(s.state) {
		current := s.state.Clone()
		s.mu.Unlock()
		return current, false
	}

	for _, a := range actions {
		before := s.state
		s.state = Reduce(before, a)
		if s.hook != nil {
			s.hook(a, before, s.state)
		}
	}

	next := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if len(actions) > 0 {
		for _, l := range listeners {
			l(next.Clone())
		}
	}
	return next, true
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
