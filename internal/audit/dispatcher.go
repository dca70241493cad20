package audit

import "log"

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Recorder persists one activity log entry. *Logger is the production
// implementation.
type Recorder interface {
	Log(userID *string, action string, entity string, entityID *string, metadata any) error
}

type Dispatcher struct {
	logger Recorder
	queue  chan Event
}

func NewDispatcher(logger Recorder) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("activity log error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// queue full: drop the event, never block a request
		log.Println("activity log queue full, dropping event")
	}
}
