package store

import (
	"sync"
	"testing"

	"health-assessment-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleUser() entity.User {
	return entity.User{ID: "1", Email: "john@example.com", FirstName: "John", LastName: "Doe"}
}

func samplePrediction() entity.PredictionResult {
	return entity.PredictionResult{
		ID:        "p-1",
		Diseases:  []entity.Disease{{Name: "Common Cold", Probability: 0.75, Severity: entity.LevelLow}},
		CreatedAt: "2024-01-15T09:00:00Z",
	}
}

func allActions() []Action {
	return []Action{
		SetPage{Page: entity.PageDashboard},
		SetUser{User: sampleUser()},
		Logout{},
		SetHealthData{Data: entity.PartialHealthData{Age: intPtr(30), Symptoms: []string{"Fever"}}},
		SetPredictions{Predictions: []entity.PredictionResult{samplePrediction()}},
		SetDoctors{Doctors: entity.DoctorCatalog()},
		SetLoading{Loading: true},
		ErrorMessage("boom"),
		ClearError(),
		unknownAction{tag: "SET_THEME"},
	}
}

func populatedState() State {
	return ReduceAll(InitialState(),
		SetUser{User: sampleUser()},
		SetPage{Page: entity.PageDoctors},
		SetHealthData{Data: entity.PartialHealthData{Weight: floatPtr(70)}},
		SetDoctors{Doctors: entity.DoctorCatalog()},
		ErrorMessage("previous failure"),
	)
}

func TestInitialState(t *testing.T) {
	s := InitialState()
	assert.Equal(t, entity.PageLogin, s.CurrentPage)
	assert.Nil(t, s.User)
	assert.False(t, s.IsAuthenticated)
	assert.True(t, s.HealthData.IsEmpty())
	assert.Empty(t, s.Predictions)
	assert.Empty(t, s.Doctors)
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.Error)
}

func TestReduce_IsPure(t *testing.T) {
	for _, start := range []State{InitialState(), populatedState()} {
		for _, a := range allActions() {
			before := start.Clone()
			first := Reduce(start, a)
			second := Reduce(start, a)

			assert.Equal(t, first, second, "action %s", a.Type())
			assert.Equal(t, before, start, "action %s mutated its input", a.Type())
		}
	}
}

func TestReduce_SetUserAuthenticates(t *testing.T) {
	for _, u := range []entity.User{{}, {ID: "7"}, sampleUser()} {
		s := Reduce(InitialState(), SetUser{User: u})
		assert.True(t, s.IsAuthenticated)
		require.NotNil(t, s.User)
		assert.Equal(t, u, *s.User)
	}
}

func TestReduce_LogoutResets(t *testing.T) {
	for _, start := range []State{InitialState(), populatedState()} {
		s := Reduce(start, Logout{})
		assert.Equal(t, entity.PageLogin, s.CurrentPage)
		assert.Nil(t, s.User)
		assert.False(t, s.IsAuthenticated)
	}

	s := Reduce(populatedState(), Logout{})
	assert.Len(t, s.Doctors, 4, "logout leaves domain data alone")
}

func TestReduce_HealthDataMerges(t *testing.T) {
	s := ReduceAll(InitialState(),
		SetHealthData{Data: entity.PartialHealthData{Age: intPtr(30)}},
		SetHealthData{Data: entity.PartialHealthData{Weight: floatPtr(70)}},
	)
	require.NotNil(t, s.HealthData.Age)
	require.NotNil(t, s.HealthData.Weight)
	assert.Equal(t, 30, *s.HealthData.Age)
	assert.Equal(t, 70.0, *s.HealthData.Weight)

	s = Reduce(s, SetHealthData{Data: entity.PartialHealthData{Age: intPtr(31)}})
	assert.Equal(t, 31, *s.HealthData.Age)
	assert.Equal(t, 70.0, *s.HealthData.Weight)
}

func TestReduce_ReplacesLists(t *testing.T) {
	s := Reduce(InitialState(), SetPredictions{Predictions: []entity.PredictionResult{samplePrediction()}})
	second := samplePrediction()
	second.ID = "p-2"
	s = Reduce(s, SetPredictions{Predictions: []entity.PredictionResult{second}})
	require.Len(t, s.Predictions, 1)
	assert.Equal(t, "p-2", s.Predictions[0].ID)

	s = Reduce(s, SetDoctors{Doctors: entity.DoctorCatalog()[:2]})
	assert.Len(t, s.Doctors, 2)
	s = Reduce(s, SetDoctors{})
	assert.NotNil(t, s.Doctors)
	assert.Empty(t, s.Doctors)
}

func TestReduce_LoadingAndError(t *testing.T) {
	s := ReduceAll(InitialState(), SetLoading{Loading: true}, ErrorMessage("Service unavailable"))
	assert.True(t, s.IsLoading)
	require.NotNil(t, s.Error)
	assert.Equal(t, "Service unavailable", *s.Error)

	s = ReduceAll(s, SetLoading{Loading: false}, ClearError())
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.Error)
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	start := populatedState()
	assert.Equal(t, start, Reduce(start, unknownAction{tag: "SET_THEME"}))
}

func TestReduce_PayloadNotAliased(t *testing.T) {
	list := []entity.PredictionResult{samplePrediction()}
	s := Reduce(InitialState(), SetPredictions{Predictions: list})
	list[0].ID = "changed"
	assert.Equal(t, "p-1", s.Predictions[0].ID)
}

func TestDecodeAction(t *testing.T) {
	t.Run("page", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"SET_PAGE","payload":"dashboard"}`))
		require.NoError(t, err)
		assert.Equal(t, SetPage{Page: entity.PageDashboard}, a)
	})

	t.Run("unknown page is rejected", func(t *testing.T) {
		_, err := DecodeAction([]byte(`{"type":"SET_PAGE","payload":"settings"}`))
		assert.ErrorIs(t, err, ErrMalformedAction)
	})

	t.Run("missing payload", func(t *testing.T) {
		_, err := DecodeAction([]byte(`{"type":"SET_USER"}`))
		assert.ErrorIs(t, err, ErrMissingPayload)
	})

	t.Run("logout ignores payload", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"LOGOUT","payload":{"x":1}}`))
		require.NoError(t, err)
		assert.Equal(t, Logout{}, a)
	})

	t.Run("error null clears", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"SET_ERROR","payload":null}`))
		require.NoError(t, err)
		assert.Equal(t, ClearError(), a)

		a, err = DecodeAction([]byte(`{"type":"SET_ERROR","payload":"oops"}`))
		require.NoError(t, err)
		assert.Equal(t, ErrorMessage("oops"), a)
	})

	t.Run("health data", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"SET_HEALTH_DATA","payload":{"age":30,"symptoms":["Headache"]}}`))
		require.NoError(t, err)
		hd, ok := a.(SetHealthData)
		require.True(t, ok)
		assert.Equal(t, 30, *hd.Data.Age)
		assert.Equal(t, []string{"Headache"}, hd.Data.Symptoms)
		assert.Nil(t, hd.Data.Weight)
	})

	t.Run("bad severity", func(t *testing.T) {
		_, err := DecodeAction([]byte(`{"type":"SET_PREDICTIONS","payload":[{"id":"1","diseases":[{"name":"x","severity":"extreme"}]}]}`))
		assert.ErrorIs(t, err, ErrMalformedAction)
	})

	t.Run("unknown type is a no-op", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"SET_THEME","payload":"dark"}`))
		require.NoError(t, err)
		assert.Equal(t, ActionType("SET_THEME"), a.Type())
		start := populatedState()
		assert.Equal(t, start, Reduce(start, a))
	})

	t.Run("unknown type without payload is a no-op", func(t *testing.T) {
		a, err := DecodeAction([]byte(`{"type":"SET_THEME"}`))
		require.NoError(t, err)
		assert.Equal(t, ActionType("SET_THEME"), a.Type())
		start := populatedState()
		assert.Equal(t, start, Reduce(start, a))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := DecodeAction([]byte(`not json`))
		assert.ErrorIs(t, err, ErrMalformedAction)
		_, err = DecodeAction([]byte(`{"payload":1}`))
		assert.ErrorIs(t, err, ErrMalformedAction)
	})
}

func TestEncodeAction_RoundTrip(t *testing.T) {
	for _, a := range []Action{SetPage{Page: entity.PageProfile}, SetLoading{Loading: true}, ErrorMessage("x"), ClearError(), Logout{}} {
		raw, err := EncodeAction(a)
		require.NoError(t, err)
		decoded, err := DecodeAction(raw)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
	}
}

func TestStore_DispatchAndSnapshot(t *testing.T) {
	st := New()
	next := st.Dispatch(SetUser{User: sampleUser()}, SetPage{Page: entity.PageDashboard})
	assert.Equal(t, entity.PageDashboard, next.CurrentPage)

	snap := st.Snapshot()
	snap.User.FirstName = "Mallory"
	snap.Doctors = append(snap.Doctors, entity.Doctor{ID: "x"})

	again := st.Snapshot()
	assert.Equal(t, "John", again.User.FirstName)
	assert.Empty(t, again.Doctors)
}

func TestStore_DispatchIf(t *testing.T) {
	st := New(WithInitialState(populatedState()))
	onDoctors := func(s State) bool { return s.CurrentPage == entity.PageDoctors }

	_, applied := st.DispatchIf(onDoctors, SetLoading{Loading: true})
	assert.True(t, applied)

	st.Dispatch(SetPage{Page: entity.PageProfile})
	state, applied := st.DispatchIf(onDoctors, SetDoctors{})
	assert.False(t, applied)
	assert.Len(t, state.Doctors, 4)
}

func TestStore_SubscribeAndHook(t *testing.T) {
	var seen []entity.Page
	var hooked []ActionType
	st := New(WithDispatchHook(func(a Action, before, after State) {
		hooked = append(hooked, a.Type())
	}))

	unsubscribe := st.Subscribe(func(s State) { seen = append(seen, s.CurrentPage) })
	st.Dispatch(SetPage{Page: entity.PageRegister})
	st.Dispatch(SetUser{User: sampleUser()}, SetPage{Page: entity.PageOnboarding})
	unsubscribe()
	unsubscribe()
	st.Dispatch(Logout{})

	assert.Equal(t, []entity.Page{entity.PageRegister, entity.PageOnboarding}, seen)
	assert.Equal(t, []ActionType{ActionSetPage, ActionSetUser, ActionSetPage, ActionLogout}, hooked)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	st := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.Dispatch(SetHealthData{Data: entity.PartialHealthData{Age: intPtr(i)}}, SetLoading{Loading: i%2 == 0})
			_ = st.Snapshot()
		}(i)
	}
	wg.Wait()

	s := st.Snapshot()
	require.NotNil(t, s.HealthData.Age)
	assert.GreaterOrEqual(t, *s.HealthData.Age, 0)
}
