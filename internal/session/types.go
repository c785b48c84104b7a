package session

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
)

const DefaultID = "default"

var ErrConflict = errors.New("session: could not acquire session lock")

// ErrReset is returned by Update when the session was reset while the turn
// was running; the turn is not committed.
var ErrReset = errors.New("session: reset during turn")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// State is the conversation held for one session id.
type State struct {
	Messages         []Message       `json:"messages"`
	Intent           string          `json:"intent,omitempty"`
	AvailableSlots   []calendar.Slot `json:"available_slots"`
	SelectedSlot     *calendar.Slot  `json:"selected_slot,omitempty"`
	BookingConfirmed bool            `json:"booking_confirmed"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (s *State) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}

func (s *State) clone() *State {
	c := *s
	c.Messages = append([]Message(nil), s.Messages...)
	c.AvailableSlots = append([]calendar.Slot(nil), s.AvailableSlots...)
	if s.SelectedSlot != nil {
		sel := *s.SelectedSlot
		c.SelectedSlot = &sel
	}
	return &c
}

// Store serializes turns per session. fn runs with exclusive access to the
// session's state; a non-nil error from fn discards its changes.
type Store interface {
	Update(ctx context.Context, id string, fn func(*State) error) error
	Reset(ctx context.Context, id string) error
	ResetAll(ctx context.Context) error
	Len(ctx context.Context) (int, error)
	Name() string
}
