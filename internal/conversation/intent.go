package conversation

import "strings"

type Intent string

const (
	IntentBookAppointment   Intent = "book_appointment"
	IntentCheckAvailability Intent = "check_availability"
	IntentConfirmBooking    Intent = "confirm_booking"
	IntentModifyRequest     Intent = "modify_request"
	IntentClarify           Intent = "clarify"
)

// Rule maps a predicate over the lowercased message to an intent.
type Rule struct {
	Match  func(msg string) bool
	Intent Intent
}

// DefaultRules is evaluated top to bottom and the first match wins, so
// order matters: "book it" is caught by the booking rule before the
// confirmation rule ever sees it.
var DefaultRules = []Rule{
	{Match: containsAny("book", "schedule", "appointment", "meeting"), Intent: IntentBookAppointment},
	{Match: containsAny("available", "free", "time"), Intent: IntentCheckAvailability},
	{Match: containsAny("confirm", "yes", "book it"), Intent: IntentConfirmBooking},
	{Match: containsAny("cancel", "no", "different"), Intent: IntentModifyRequest},
	{Match: isBareNumber, Intent: IntentConfirmBooking},
}

// Classify returns the intent of the first matching rule, or clarify.
func Classify(rules []Rule, message string) Intent {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if r.Match(msg) {
			return r.Intent
		}
	}
	return IntentClarify
}

// containsAny is a plain substring test: "no" also matches "now" and "know".
func containsAny(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

func isBareNumber(msg string) bool {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return false
	}
	for _, r := range msg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
