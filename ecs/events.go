package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventPathChanged carries the Entity whose raw path was replaced.
	EventPathChanged = "path_changed"
	// EventSessionEnded carries the Entity whose navigation session ended.
	EventSessionEnded = "session_ended"
	// EventSettingToggled carries the name of a navigation switch flipped by input.
	EventSettingToggled = "setting_toggled"
)

// Navigation switches named by EventSettingToggled.
const (
	SettingCentering = "centering"
	SettingSmoothing = "smoothing"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Peek returns pending events without removing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
