package service

import (
	"testing"
	"time"

	"health-assessment-service/internal/domain/entity"
	"health-assessment-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *SessionRegistry {
	t.Helper()
	r := NewSessionRegistry(quietLogger(), NewAuditService(quietLogger()), ttl, time.Hour)
	t.Cleanup(r.Stop)
	return r
}

func TestSessionRegistry_Lifecycle(t *testing.T) {
	r := newTestRegistry(t, time.Minute)

	s := r.Create()
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, entity.PageLogin, s.Store.Snapshot().CurrentPage)

	got, ok := r.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, r.Delete(s.ID))
	assert.False(t, r.Delete(s.ID))
	_, ok = r.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestSessionRegistry_SweepExpired(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	idle := r.Create()
	active := r.Create()

	idle.lastUsed.Store(time.Now().Add(-time.Hour).UnixNano())
	active.Touch()

	assert.Equal(t, 1, r.sweepExpired(time.Now()))
	_, ok := r.Get(idle.ID)
	assert.False(t, ok)
	_, ok = r.Get(active.ID)
	assert.True(t, ok)
}

func TestSessionRegistry_StopDropsSessions(t *testing.T) {
	r := NewSessionRegistry(quietLogger(), nil, time.Minute, time.Hour)
	r.Create()
	r.Create()
	r.Stop()
	r.Stop()
	assert.Equal(t, 0, r.Len())
}

func TestSession_DraftsFollowPage(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	s := r.Create()

	ok, err := s.HealthForm(func(store.State, *entity.HealthForm) error { return nil })
	require.NoError(t, err)
	assert.False(t, ok, "no wizard outside the health-form page")

	age := 40
	s.Store.Dispatch(store.SetHealthData{Data: entity.PartialHealthData{Age: &age}}, store.SetPage{Page: entity.PageHealthForm})

	ok, _ = s.HealthForm(func(_ store.State, f *entity.HealthForm) error {
		require.NotNil(t, f.Age)
		assert.Equal(t, 40, *f.Age, "draft is prefilled from the store")
		f.AddSymptom("Cough")
		f.Next()
		return nil
	})
	assert.True(t, ok)

	s.HealthForm(func(_ store.State, f *entity.HealthForm) error {
		assert.Equal(t, []string{"Cough"}, f.Symptoms)
		assert.Equal(t, entity.HealthFormStepSymptoms, f.Step)
		return nil
	})

	s.Store.Dispatch(store.SetPage{Page: entity.PageDashboard})
	s.Store.Dispatch(store.SetPage{Page: entity.PageHealthForm})

	s.HealthForm(func(_ store.State, f *entity.HealthForm) error {
		assert.Empty(t, f.Symptoms, "leaving the page discards the draft")
		assert.Equal(t, entity.HealthFormStepVitals, f.Step)
		return nil
	})
}

func TestSession_Onboarding(t *testing.T) {
	r := newTestRegistry(t, time.Minute)
	s := r.Create()

	assert.False(t, s.Onboarding(func(*int) {}))

	s.Store.Dispatch(store.SetPage{Page: entity.PageOnboarding})
	s.Onboarding(func(c *int) { *c = 2 })
	s.Onboarding(func(c *int) { assert.Equal(t, 2, *c) })

	s.Store.Dispatch(store.SetPage{Page: entity.PageDashboard})
	s.Store.Dispatch(store.SetPage{Page: entity.PageOnboarding})
	s.Onboarding(func(c *int) { assert.Equal(t, 0, *c) })
}

func TestSession_Tasks(t *testing.T) {
	s := newSession("s")
	first := s.BeginTask()
	assert.True(t, s.IsLatestTask(first))
	second := s.BeginTask()
	assert.False(t, s.IsLatestTask(first))
	assert.True(t, s.IsLatestTask(second))
}
