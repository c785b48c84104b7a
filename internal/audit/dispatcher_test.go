package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDispatcherWritesToProcessLogWithoutDatabase(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	d := NewDispatcher(New(nil, log), log)
	d.Dispatch(Event{
		SessionID: "s-1",
		Action:    ActionBookingFallback,
		Entity:    "booking",
		Metadata:  map[string]any{"title": "Meeting"},
	})
	d.Close()

	entries := logs.FilterMessage("audit").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, ActionBookingFallback, fields["action"])
	assert.Equal(t, "s-1", fields["session_id"])
	assert.JSONEq(t, `{"title":"Meeting"}`, fields["metadata"].(string))
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(nil, nil), nil)
	d.Close()
	d.Close()
}
