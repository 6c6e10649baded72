package notify

import (
	"context"
	"sync"
)

// Notification is one recorded feedback event.
type Notification struct {
	Severity Severity
	Entity   string
	Message  string
}

// Recorder captures notifications for assertions in tests.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify appends the event to the recorded list.
func (r *Recorder) Notify(_ context.Context, severity Severity, entity, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Notification{Severity: severity, Entity: entity, Message: message})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.events...)
}

// Last returns the most recent event, or false if nothing was recorded.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Notification{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset clears the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
