package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want Intent
	}{
		{"I want to book a meeting", IntentBookAppointment},
		{"Schedule something next week", IntentBookAppointment},
		{"Book it", IntentBookAppointment},
		{"Are you available tomorrow?", IntentCheckAvailability},
		{"any FREE slots", IntentCheckAvailability},
		{"yes please, slot 2", IntentConfirmBooking},
		{"confirm 3", IntentConfirmBooking},
		{"cancel that", IntentModifyRequest},
		{"I know", IntentModifyRequest},
		{"something different", IntentModifyRequest},
		{"3", IntentConfirmBooking},
		{"  12 ", IntentConfirmBooking},
		{"hello", IntentClarify},
		{"", IntentClarify},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(DefaultRules, tt.msg))
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Match: containsAny("yes"), Intent: IntentModifyRequest},
		{Match: containsAny("yes"), Intent: IntentConfirmBooking},
	}
	assert.Equal(t, IntentModifyRequest, Classify(rules, "yes"))
}

func TestExtractSearchStart(t *testing.T) {
	now := time.Date(2024, 6, 2, 15, 47, 33, 120, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), ExtractSearchStart(now, "book a meeting"))
	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), ExtractSearchStart(now, "Tomorrow at 3pm"))
	assert.Equal(t, time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC), ExtractSearchStart(now, "something NEXT WEEK"))
	assert.Equal(t, time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), ExtractSearchStart(now, "tomorrow or next week"))
}

func TestExtractSelection(t *testing.T) {
	n, ok := ExtractSelection("slot 2 or 3")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = ExtractSelection("the second one")
	assert.False(t, ok)

	n, ok = ExtractSelection("99999999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}
