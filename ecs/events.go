package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// Event types emitted by the collision system and consumed within the same tick.
const (
	EventPlayerHit    = "player_hit"
	EventGraze        = "graze"
	EventPlayerDead   = "player_dead"
	EventBossDefeated = "boss_defeated"
)

// EventQueue is a simple FIFO queue, cleared at the start of every tick.
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
