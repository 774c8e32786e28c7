package usecase

import (
	"context"
	"errors"

	"health-assessment-service/internal/service"
	"health-assessment-service/internal/store"
	"health-assessment-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrRequestSuperseded = errors.New("request superseded by navigation")
	ErrWrongPage         = errors.New("session is not on the page for this operation")
)

// task is a backend call whose result, when it arrives, becomes store actions.
type task func(ctx context.Context) ([]store.Action, error)

// runTask executes fn as a cancellable request against sess.
//
// The request belongs to the page current when it starts. It is cancelled as
// soon as the session navigates elsewhere, and its actions are committed only
// if the page is still the same at that moment. A request that lost the race
// returns ErrRequestSuperseded and changes nothing but the loading flag.
//
// Service failures land in the store's error slot. Field validation errors
// are returned untouched and never dispatched.
func runTask(ctx context.Context, log *logrus.Logger, sess *service.Session, fn task) (store.State, error) {
	ticket := sess.BeginTask()
	started := sess.Store.Dispatch(store.SetLoading{Loading: true}, store.ClearError())
	origin := started.CurrentPage

	taskCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	unsubscribe := sess.Store.Subscribe(func(s store.State) {
		if s.CurrentPage != origin {
			cancel(ErrRequestSuperseded)
		}
	})
	defer unsubscribe()
	if sess.Store.Snapshot().CurrentPage != origin {
		cancel(ErrRequestSuperseded)
	}

	actions, err := fn(taskCtx)

	onOrigin := func(s store.State) bool { return s.CurrentPage == origin }
	latest := func(store.State) bool { return sess.IsLatestTask(ticket) }
	newest := func(s store.State) bool { return onOrigin(s) && latest(s) }

	var verr *validator.ValidationError
	switch {
	case err == nil:
		finish := append(append([]store.Action{}, actions...), store.SetLoading{Loading: false})
		if next, ok := sess.Store.DispatchIf(newest, finish...); ok {
			return next, nil
		}
		// A newer request owns the loading flag.
		if next, ok := sess.Store.DispatchIf(onOrigin, actions...); ok {
			return next, nil
		}
		err = ErrRequestSuperseded

	case errors.Is(context.Cause(taskCtx), ErrRequestSuperseded):
		err = ErrRequestSuperseded

	case ctx.Err() != nil, errors.As(err, &verr):
		// The caller went away or sent bad fields; nothing for the error slot.

	default:
		if next, ok := sess.Store.DispatchIf(newest, store.SetLoading{Loading: false}, store.ErrorMessage(failureMessage(err))); ok {
			return next, err
		}
		if !onOrigin(sess.Store.Snapshot()) {
			err = ErrRequestSuperseded
		}
	}

	if errors.Is(err, ErrRequestSuperseded) {
		log.WithFields(logrus.Fields{
			"session_id": sess.ID,
			"page":       origin,
		}).Debug("Request superseded")
	}

	final, _ := sess.Store.DispatchIf(latest, store.SetLoading{Loading: false})
	return final, err
}

// failureMessage is what the error slot shows for a failed backend call.
func failureMessage(err error) string {
	if errors.Is(err, service.ErrServiceUnavailable) {
		return "Service temporarily unavailable, please try again"
	}
	return "Something went wrong, please try again"
}

func requireAuthenticated(sess *service.Session) (store.State, error) {
	state := sess.Store.Snapshot()
	if !state.IsAuthenticated {
		return state, ErrNotAuthenticated
	}
	return state, nil
}
