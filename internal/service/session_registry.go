package service

import (
	"sync"
	"sync/atomic"
	"time"

	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// Session
// =============================================================================

// Session is one client's application instance: its store plus the page-local
// drafts of the intake wizard and the onboarding carousel.
//
// Lock ordering: Session.mu may be held while reading the store, never the
// other way round. Store listeners take Session.mu outside the store lock.
type Session struct {
	ID    string
	Store *store.Store

	mu         sync.Mutex
	form       *entity.HealthForm
	onboarding int

	lastUsed    atomic.Int64 // Unix nano
	taskSeq     atomic.Uint64
	unsubscribe func()
}

func newSession(id string, opts ...store.Option) *Session {
	s := &Session{
		ID:    id,
		Store: store.New(opts...),
	}
	s.Touch()
	s.unsubscribe = s.Store.Subscribe(s.onStateChange)
	return s
}

// onStateChange drops the draft of every page the session is no longer on,
// the way leaving a screen discards its local state.
func (s *Session) onStateChange(store.State) {
	page := s.Store.Snapshot().CurrentPage

	s.mu.Lock()
	defer s.mu.Unlock()
	if page != entity.PageHealthForm {
		s.form = nil
	}
	if page != entity.PageOnboarding {
		s.onboarding = 0
	}
}

func (s *Session) Touch() {
	s.lastUsed.Store(time.Now().UnixNano())
}

func (s *Session) LastUsed() time.Time {
	return time.Unix(0, s.lastUsed.Load())
}

// HealthForm runs fn against the wizard draft, creating it from the store's
// health data on first use. ok is false when the session is not on the
// health-form page; fn is not called then. fn must not dispatch.
func (s *Session) HealthForm(fn func(state store.State, f *entity.HealthForm) error) (ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.Store.Snapshot()
	if state.CurrentPage != entity.PageHealthForm {
		return false, nil
	}
	if s.form == nil {
		s.form = entity.NewHealthForm(state.HealthData)
	}
	return true, fn(state, s.form)
}

// Onboarding runs fn with a pointer to the onboarding cursor. ok is false
// when the session is not on the onboarding page. fn must not dispatch.
func (s *Session) Onboarding(fn func(cursor *int)) (ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Store.Snapshot().CurrentPage != entity.PageOnboarding {
		return false
	}
	fn(&s.onboarding)
	return true
}

// BeginTask marks the start of a background request and returns its ticket.
func (s *Session) BeginTask() uint64 {
	return s.taskSeq.Add(1)
}

// IsLatestTask reports whether no request was started after ticket.
func (s *Session) IsLatestTask(ticket uint64) bool {
	return s.taskSeq.Load() == ticket
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// =============================================================================
// Registry
// =============================================================================

// SessionRegistry owns every live session. Idle sessions are swept in the
// background; call Stop during shutdown.
type SessionRegistry struct {
	log   *logrus.Logger
	audit AuditService
	ttl   time.Duration

	sessions sync.Map // map[string]*Session
	count    atomic.Int64

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewSessionRegistry(log *logrus.Logger, audit AuditService, ttl, sweepInterval time.Duration) *SessionRegistry {
	r := &SessionRegistry{
		log:      log,
		audit:    audit,
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.sweepLoop(sweepInterval)

	return r
}

// Create starts a session on the login page.
func (r *SessionRegistry) Create() *Session {
	id := uuid.New().String()

	var opts []store.Option
	if r.audit != nil {
		opts = append(opts, store.WithDispatchHook(r.audit.Hook(id)))
	}

	s := newSession(id, opts...)
	r.sessions.Store(id, s)
	r.count.Add(1)

	r.log.WithField("session_id", id).Info("Session created")
	return s
}

// Get returns a live session and marks it as used.
func (r *SessionRegistry) Get(id string) (*Session, bool) {
	v, ok := r.sessions.Load(id)
	if !ok {
		return nil, false
	}
	s := v.(*Session)
	s.Touch()
	return s, true
}

// Delete tears a session down. It reports false if the session was unknown.
func (r *SessionRegistry) Delete(id string) bool {
	v, ok := r.sessions.LoadAndDelete(id)
	if !ok {
		return false
	}
	v.(*Session).close()
	r.count.Add(-1)

	r.log.WithField("session_id", id).Info("Session closed")
	return true
}

func (r *SessionRegistry) Len() int {
	return int(r.count.Load())
}

// Stop halts the sweeper and drops every session. Safe to call multiple times.
func (r *SessionRegistry) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()

		r.sessions.Range(func(key, _ any) bool {
			r.Delete(key.(string))
			return true
		})
		r.log.Info("SessionRegistry stopped")
	}
}

func (r *SessionRegistry) sweepLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("Session sweeper stopping")
			return
		case <-ticker.C:
			r.sweepExpired(time.Now())
		}
	}
}

// sweepExpired removes sessions idle since before now-ttl. A session whose
// lock is held is in use and skipped.
func (r *SessionRegistry) sweepExpired(now time.Time) int {
	cutoff := now.Add(-r.ttl).UnixNano()
	var expired int

	r.sessions.Range(func(key, value any) bool {
		s, ok := value.(*Session)
		if !ok {
			return true
		}

		if s.mu.TryLock() {
			stale := s.lastUsed.Load() < cutoff
			s.mu.Unlock()
			if stale && r.Delete(key.(string)) {
				expired++
			}
		}
		return true
	})

	if expired > 0 {
		r.log.Debugf("Expired %d idle sessions", expired)
	}
	return expired
}
