package store

import (
	"errors"
	"fmt"

	"health-assessment-service/internal/domain/entity"

	"github.com/goccy/go-json"
)

type ActionType string

const (
	ActionSetPage        ActionType = "SET_PAGE"
	ActionSetUser        ActionType = "SET_USER"
	ActionLogout         ActionType = "LOGOUT"
	ActionSetHealthData  ActionType = "SET_HEALTH_DATA"
	ActionSetPredictions ActionType = "SET_PREDICTIONS"
	ActionSetDoctors     ActionType = "SET_DOCTORS"
	ActionSetLoading     ActionType = "SET_LOADING"
	ActionSetError       ActionType = "SET_ERROR"
)

var (
	ErrMalformedAction = errors.New("malformed action")
	ErrMissingPayload  = errors.New("action payload is required")
)

// Action is a request to change store state. The set of implementations is
// closed to this package.
type Action interface {
	Type() ActionType
	isAction()
}

type SetPage struct{ Page entity.Page }

type SetUser struct{ User entity.User }

type Logout struct{}

type SetHealthData struct{ Data entity.PartialHealthData }

type SetPredictions struct{ Predictions []entity.PredictionResult }

type SetDoctors struct{ Doctors []entity.Doctor }

type SetLoading struct{ Loading bool }

// SetError sets or, with a nil Message, clears the global error.
type SetError struct{ Message *string }

// unknownAction is what an unrecognised wire tag decodes to. Reducing it
// leaves the state unchanged.
type unknownAction struct{ tag ActionType }

func (SetPage) Type() ActionType        { return ActionSetPage }
func (SetUser) Type() ActionType        { return ActionSetUser }
func (Logout) Type() ActionType         { return ActionLogout }
func (SetHealthData) Type() ActionType  { return ActionSetHealthData }
func (SetPredictions) Type() ActionType { return ActionSetPredictions }
func (SetDoctors) Type() ActionType     { return ActionSetDoctors }
func (SetLoading) Type() ActionType     { return ActionSetLoading }
func (SetError) Type() ActionType       { return ActionSetError }
func (a unknownAction) Type() ActionType { return a.tag }

func (SetPage) isAction()        {}
func (SetUser) isAction()        {}
func (Logout) isAction()         {}
func (SetHealthData) isAction()  {}
func (SetPredictions) isAction() {}
func (SetDoctors) isAction()     {}
func (SetLoading) isAction()     {}
func (SetError) isAction()       {}
func (unknownAction) isAction()  {}

// ErrorMessage builds a SetError carrying msg.
func ErrorMessage(msg string) SetError {
	return SetError{Message: &msg}
}

// ClearError builds a SetError that empties the error slot.
func ClearError() SetError {
	return SetError{}
}

// envelope is the wire form: {"type": "SET_PAGE", "payload": "dashboard"}.
type envelope struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction parses the wire form of an action. Unknown tags decode to an
// action the reducer ignores; known tags with a bad payload are rejected.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAction, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrMalformedAction)
	}

	absent := len(env.Payload) == 0 || string(env.Payload) == "null"

	switch env.Type {
	case ActionLogout:
		return Logout{}, nil

	case ActionSetError:
		if absent {
			return ClearError(), nil
		}
		var msg string
		if err := decodePayload(env, &msg); err != nil {
			return nil, err
		}
		return ErrorMessage(msg), nil

	case ActionSetPage, ActionSetUser, ActionSetHealthData,
		ActionSetPredictions, ActionSetDoctors, ActionSetLoading:
		if absent {
			return nil, fmt.Errorf("%w: %s", ErrMissingPayload, env.Type)
		}

	default:
		return unknownAction{tag: env.Type}, nil
	}

	switch env.Type {
	case ActionSetPage:
		var p entity.Page
		if err := decodePayload(env, &p); err != nil {
			return nil, err
		}
		return SetPage{Page: p}, nil

	case ActionSetUser:
		var u entity.User
		if err := decodePayload(env, &u); err != nil {
			return nil, err
		}
		return SetUser{User: u}, nil

	case ActionSetHealthData:
		var hd entity.PartialHealthData
		if err := decodePayload(env, &hd); err != nil {
			return nil, err
		}
		return SetHealthData{Data: hd}, nil

	case ActionSetPredictions:
		var list []entity.PredictionResult
		if err := decodePayload(env, &list); err != nil {
			return nil, err
		}
		return SetPredictions{Predictions: list}, nil

	case ActionSetDoctors:
		var list []entity.Doctor
		if err := decodePayload(env, &list); err != nil {
			return nil, err
		}
		return SetDoctors{Doctors: list}, nil

	case ActionSetLoading:
		var loading bool
		if err := decodePayload(env, &loading); err != nil {
			return nil, err
		}
		return SetLoading{Loading: loading}, nil
	}

	return unknownAction{tag: env.Type}, nil
}

// EncodeAction renders the wire form of a.
func EncodeAction(a Action) ([]byte, error) {
	env := struct {
		Type    ActionType  `json:"type"`
		Payload interface{} `json:"payload,omitempty"`
	}{Type: a.Type()}

	switch v := a.(type) {
	case SetPage:
		env.Payload = v.Page
	case SetUser:
		env.Payload = v.User
	case SetHealthData:
		env.Payload = v.Data
	case SetPredictions:
		env.Payload = v.Predictions
	case SetDoctors:
		env.Payload = v.Doctors
	case SetLoading:
		env.Payload = v.Loading
	case SetError:
		if v.Message != nil {
			env.Payload = *v.Message
		}
	}

	return json.Marshal(env)
}

func decodePayload(env envelope, dst interface{}) error {
	if err := json.Unmarshal(env.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrMalformedAction, env.Type, err)
	}
	return nil
}
