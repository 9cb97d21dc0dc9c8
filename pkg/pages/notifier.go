package pages

import (
	"github.com/google/uuid"
	"github.com/robinjoseph08/golib/logger"
)

// Notification is one transient console message, the equivalent of a toast.
type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	IsError bool   `json:"is_error"`
}

// Notifier is the notification port page controllers publish through. It is
// injected, never a package-level singleton, so tests can swap in a double.
type Notifier interface {
	Notify(n Notification)
}

func successNotification(title, message string) Notification {
	return Notification{ID: uuid.NewString(), Title: title, Message: message}
}

func errorNotification(title, message string) Notification {
	return Notification{ID: uuid.NewString(), Title: title, Message: message, IsError: true}
}

// LogNotifier writes notifications to the structured log. It is the default
// sink for the CLI, where there is no notification surface to render into.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{log: logger.New()}
}

func (n *LogNotifier) Notify(notification Notification) {
	data := logger.Data{"id": notification.ID, "title": notification.Title}
	if notification.IsError {
		n.log.Error(notification.Message, data)
		return
	}
	n.log.Info(notification.Message, data)
}
