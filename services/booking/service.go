// File: services/booking/service.go
package booking

import (
	"glossify/utils"

	"go.uber.org/zap"
)

// Service wires the session state machine to its external collaborators:
// the backend detailing API, the notification dispatcher and the reminder
// queue. Sessions themselves stay pure; every network-bound operation goes
// through here.
type Service struct {
	API       DetailingAPI
	Notifier  Notifier
	Reminders ReminderScheduler
	Store     SessionStore

	logger *zap.Logger
}

// NewService builds the booking service. Reminders may be nil when no
// reminder queue is configured; scheduled reminders are then skipped with a
// warning on the confirmation result.
func NewService(api DetailingAPI, notifier Notifier, reminders ReminderScheduler, store SessionStore) *Service {
	return &Service{
		API:       api,
		Notifier:  notifier,
		Reminders: reminders,
		Store:     store,
		logger:    utils.GetLogger(),
	}
}

// StartSession creates a fresh wizard session bound to the service's store.
func (svc *Service) StartSession() *Session {
	return NewSession(svc.Store)
}
