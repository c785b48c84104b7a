package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
	"github.com/BruksfildServices01/booking-assistant/internal/session"
	ucCalendar "github.com/BruksfildServices01/booking-assistant/internal/usecase/calendar"
)

const (
	defaultDurationMinutes = 60
	listedSlots            = 5
	bookingTitle           = "Meeting"
)

const (
	ReplyNoSlots       = "No available slots found in that period."
	ReplyPickSlot      = "Which slot would you prefer?"
	ReplySelectValid   = "Please select a valid slot number."
	ReplyInvalidSlot   = "Invalid slot. Please choose again."
	ReplyBookingFailed = "Booking failed. Try again."
	ReplyModify        = "Okay, let’s pick a new time. When would you like?"
	ReplyClarify       = "Hi! I can help you check availability or book appointments. When would work for you?"
)

type SlotFinder interface {
	Execute(ctx context.Context, windowStart, windowEnd time.Time, durationMinutes int) ([]calendar.Slot, error)
}

type Booker interface {
	Execute(ctx context.Context, in ucCalendar.BookAppointmentInput) bool
}

type Reply struct {
	Intent           Intent
	Response         string
	AvailableSlots   []string
	BookingConfirmed bool
}

// Router turns one user message into one assistant reply, reading and
// mutating the caller's session state.
type Router struct {
	rules  []Rule
	slots  SlotFinder
	booker Booker
	now    func() time.Time
}

type Option func(*Router)

func WithClock(now func() time.Time) Option {
	return func(r *Router) { r.now = now }
}

func WithRules(rules []Rule) Option {
	return func(r *Router) { r.rules = rules }
}

func NewRouter(slots SlotFinder, booker Booker, opts ...Option) *Router {
	r := &Router{
		rules:  DefaultRules,
		slots:  slots,
		booker: booker,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Router) Process(ctx context.Context, sessionID string, st *session.State, message string) (Reply, error) {
	st.Append(session.RoleUser, message)

	intent := Classify(r.rules, message)
	st.Intent = string(intent)

	var (
		response string
		err      error
	)

	switch intent {
	case IntentBookAppointment, IntentCheckAvailability:
		response, err = r.search(ctx, st, message)
	case IntentConfirmBooking:
		response = r.confirm(ctx, sessionID, st, message)
	case IntentModifyRequest:
		response = ReplyModify
	default:
		response = ReplyClarify
	}
	if err != nil {
		return Reply{}, err
	}

	st.Append(session.RoleAssistant, response)

	displays := make([]string, 0, len(st.AvailableSlots))
	for _, s := range st.AvailableSlots {
		displays = append(displays, s.Display)
	}

	return Reply{
		Intent:           intent,
		Response:         response,
		AvailableSlots:   displays,
		BookingConfirmed: st.BookingConfirmed,
	}, nil
}

// search replaces the stored slot list. A selection made later always
// indexes the most recent list.
func (r *Router) search(ctx context.Context, st *session.State, message string) (string, error) {
	start := ExtractSearchStart(r.now(), message)

	slots, err := r.slots.Execute(ctx, start, start.Add(searchWindow), defaultDurationMinutes)
	if err != nil {
		return "", fmt.Errorf("find slots: %w", err)
	}
	st.AvailableSlots = slots

	if len(slots) == 0 {
		return ReplyNoSlots, nil
	}

	var b strings.Builder
	b.WriteString("Available slots:\n")
	for i, s := range slots {
		if i == listedSlots {
			break
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.Display)
	}
	b.WriteString(ReplyPickSlot)
	return b.String(), nil
}

func (r *Router) confirm(ctx context.Context, sessionID string, st *session.State, message string) string {
	n, ok := ExtractSelection(message)
	if !ok || len(st.AvailableSlots) == 0 {
		return ReplySelectValid
	}

	idx := n - 1
	if idx < 0 || idx >= len(st.AvailableSlots) {
		return ReplyInvalidSlot
	}

	sel := st.AvailableSlots[idx]
	st.SelectedSlot = &sel

	success := r.booker.Execute(ctx, ucCalendar.BookAppointmentInput{
		SessionID: sessionID,
		Start:     sel.Start,
		End:       sel.End,
		Title:     bookingTitle,
	})
	st.BookingConfirmed = success

	if !success {
		return ReplyBookingFailed
	}
	return fmt.Sprintf("Booked for %s.", sel.Display)
}
