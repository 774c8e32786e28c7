package service

import (
	"health-assessment-service/internal/store"

	"github.com/sirupsen/logrus"
)

// AuditService records every state transition of a session store.
type AuditService interface {
	Hook(sessionID string) store.DispatchHook
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

// Hook returns a dispatch hook bound to sessionID. Page changes and error
// transitions are logged at info, everything else at debug.
func (s *auditService) Hook(sessionID string) store.DispatchHook {
	return func(action store.Action, before, after store.State) {
		fields := logrus.Fields{
			"session_id":    sessionID,
			"action":        action.Type(),
			"authenticated": after.IsAuthenticated,
		}

		switch {
		case before.CurrentPage != after.CurrentPage:
			fields["page_from"] = before.CurrentPage
			fields["page_to"] = after.CurrentPage
			s.log.WithFields(fields).Info("Page changed")
		case after.Error != nil && (before.Error == nil || *before.Error != *after.Error):
			fields["error"] = *after.Error
			s.log.WithFields(fields).Warn("Session error set")
		default:
			s.log.WithFields(fields).Debug("Action dispatched")
		}
	}
}
