package pursuit

import "time"

type EventKind string

const (
	EventJoined   EventKind = "joined"
	EventMoved    EventKind = "moved"
	EventCaptured EventKind = "captured"
	EventPath     EventKind = "path"
	EventPokedex  EventKind = "pokedex"
	EventGameOver EventKind = "game_over"
)

type Event struct {
	Seq   int       `json:"seq"`
	Time  time.Time `json:"time"`
	Kind  EventKind `json:"kind"`
	Agent string    `json:"agent,omitempty"`
	Text  string    `json:"text"`
}

// ActionLog is append-only. Seq starts at 1 and has no gaps.
type ActionLog struct {
	events []Event
	now    func() time.Time
}

func NewActionLog(now func() time.Time) *ActionLog {
	if now == nil {
		now = time.Now
	}

	return &ActionLog{now: now}
}

func (that *ActionLog) Append(kind EventKind, agent, text string) Event {
	event := Event{
		Seq:   len(that.events) + 1,
		Time:  that.now(),
		Kind:  kind,
		Agent: agent,
		Text:  text,
	}
	that.events = append(that.events, event)

	return event
}

// Since returns a copy of the events with Seq greater than seq.
func (that *ActionLog) Since(seq int) []Event {
	if seq < 0 {
		seq = 0
	}
	if seq >= len(that.events) {
		return nil
	}

	return append([]Event(nil), that.events[seq:]...)
}

func (that *ActionLog) Len() int {
	return len(that.events)
}
