// Package audit is the append-only record of every state-changing action in
// the engine. Events carry enough fields to reconstruct the transition (actor,
// amounts, resulting ids and status) for external indexers.
package audit

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Event is one audit entry. Attrs hold the per-type payload as flat strings so
// sinks stay schema-free.
//
//tinyjson:json
type Event struct {
	ID    string            `json:"id"`
	Type  string            `json:"type"`
	Code  string            `json:"code"`
	At    int64             `json:"at"`
	Actor string            `json:"actor"`
	Attrs map[string]string `json:"attrs,omitempty"`
}

// New stamps a fresh event with a uuid.
func New(typ, code string, actor string, at int64, attrs map[string]string) Event {
	return Event{
		ID:    uuid.NewString(),
		Type:  typ,
		Code:  code,
		At:    at,
		Actor: actor,
		Attrs: attrs,
	}
}

// Compact renders the short pipe form used in log lines, e.g.
// "pc|by:alice|id:3". Attrs are sorted so the output is stable.
func (e Event) Compact() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString("|by:")
	b.WriteString(e.Actor)
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(e.Attrs[k])
	}
	return b.String()
}

// Sink consumes events in order. Append must not mutate the event.
type Sink interface {
	Append(Event) error
}

// MemorySink keeps events in process. Handy for tests and for hosts that
// expose the trail through their own query surface.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

// NewMemorySink returns an empty in-process sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Append stores the event. Never fails.
func (s *MemorySink) Append(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

// Events returns a copy of the trail in append order.
func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len reports how many events were appended.
func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Last returns the most recent event, or false when the trail is empty.
func (s *MemorySink) Last() (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return Event{}, false
	}
	return s.events[len(s.events)-1], true
}
