package eventlog

import (
	"errors"

	"github.com/fieldside/scorekeeper/internal/common/uuid"
	"github.com/fieldside/scorekeeper/internal/models"
)

// Config holds configuration for the event log
type Config struct {
	// UUIDGenerator assigns event IDs
	UUIDGenerator uuid.UUID
}

// Log is the append-only, user-editable ordered event sequence. It is the
// single source of truth for everything derived from the match. Business
// legality is validated by the caller before appending.
type Log struct {
	gen     uuid.UUID
	events  []models.Event
	nextSeq int
}

// New creates an empty event log
func New(cfg *Config) (*Log, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &Log{
		gen:    cfg.UUIDGenerator,
		events: []models.Event{},
	}, nil
}

// Append assigns the event a unique ID and sequence number and inserts it
// at the logical end. Returns the assigned ID.
func (l *Log) Append(event models.Event) string {
	event.ID = l.gen.NewUUID()
	event.Seq = l.nextSeq
	l.nextSeq++
	l.events = append(l.events, event)
	return event.ID
}

// Update is the set of fields mutable after appending. Nil means unchanged.
type Update struct {
	// Scorer and Assistor apply to Score events
	Scorer   *string
	Assistor *string

	// TeamSide applies to Timeout events (reassignment)
	TeamSide *models.TeamSide
}

// Update applies the partial fields to the event with the given ID.
// Returns false if the ID is not found.
func (l *Log) Update(id string, upd Update) bool {
	for i := range l.events {
		if l.events[i].ID != id {
			continue
		}
		if upd.Scorer != nil {
			l.events[i].Scorer = *upd.Scorer
		}
		if upd.Assistor != nil {
			l.events[i].Assistor = *upd.Assistor
		}
		if upd.TeamSide != nil {
			l.events[i].TeamSide = *upd.TeamSide
		}
		return true
	}
	return false
}

// Get returns a copy of the event with the given ID, or nil if not found.
func (l *Log) Get(id string) *models.Event {
	for i := range l.events {
		if l.events[i].ID == id {
			event := l.events[i]
			return &event
		}
	}
	return nil
}

// Remove deletes the event with the given ID and returns it, or nil if the
// ID is not found. Later events keep their sequence numbers.
func (l *Log) Remove(id string) *models.Event {
	for i := range l.events {
		if l.events[i].ID != id {
			continue
		}
		removed := l.events[i]
		l.events = append(l.events[:i], l.events[i+1:]...)
		return &removed
	}
	return nil
}

// All returns a copy of the log in insertion order.
func (l *Log) All() []models.Event {
	out := make([]models.Event, len(l.events))
	copy(out, l.events)
	return out
}

// Len returns the number of events in the log.
func (l *Log) Len() int {
	return len(l.events)
}

// Clear empties the log. The sequence counter keeps advancing so IDs from
// a cleared match never reorder against new ones.
func (l *Log) Clear() {
	l.events = l.events[:0]
}

// Replace loads the log wholesale, used when restoring a snapshot.
func (l *Log) Replace(events []models.Event, nextSeq int) {
	l.events = make([]models.Event, len(events))
	copy(l.events, events)
	l.nextSeq = nextSeq
	for _, e := range events {
		if e.Seq >= l.nextSeq {
			l.nextSeq = e.Seq + 1
		}
	}
}

// NextSeq returns the next sequence number to be assigned.
func (l *Log) NextSeq() int {
	return l.nextSeq
}
