package google

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	domain "github.com/BruksfildServices01/booking-assistant/internal/domain/calendar"
)

func newTestCalendar(t *testing.T, handler http.HandlerFunc) *Calendar {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := gcal.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/calendar/v3/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return New(svc)
}

func TestFreeBusyConvertsOffsetsToUTC(t *testing.T) {
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"calendars":{"primary":{"busy":[
			{"start":"2024-06-03T12:00:00+02:00","end":"2024-06-03T13:00:00+02:00"}]}}}`)
	})

	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	busy, err := cal.FreeBusy(context.Background(), start, start.Add(24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, []domain.BusyInterval{
		{Start: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)},
	}, busy)
}

func TestFreeBusyParsesPrimaryCalendar(t *testing.T) {
	var body map[string]any
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/freeBusy"), r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"calendars":{"primary":{"busy":[
			{"start":"2024-06-03T10:00:00Z","end":"2024-06-03T11:00:00Z"},
			{"start":"2024-06-04T13:30:00Z","end":"2024-06-04T14:00:00Z"}]}}}`)
	})

	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	busy, err := cal.FreeBusy(context.Background(), start, start.Add(7*24*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "2024-06-03T09:00:00Z", body["timeMin"])
	assert.Equal(t, "2024-06-10T09:00:00Z", body["timeMax"])
	assert.Equal(t, []domain.BusyInterval{
		{Start: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC)},
		{Start: time.Date(2024, 6, 4, 13, 30, 0, 0, time.UTC), End: time.Date(2024, 6, 4, 14, 0, 0, 0, time.UTC)},
	}, busy)
}

func TestFreeBusyServerErrorIsUnavailable(t *testing.T) {
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":503,"message":"backend down"}}`, http.StatusServiceUnavailable)
	})

	_, err := cal.FreeBusy(context.Background(), time.Now(), time.Now().Add(time.Hour))
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
}

func TestInsertEventSendsUTCLabel(t *testing.T) {
	var got gcal.Event
	cal := newTestCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasSuffix(r.URL.Path, "/calendars/primary/events"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"evt-1"}`)
	})

	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	err := cal.InsertEvent(context.Background(), domain.NewEvent(start, start.Add(time.Hour), "Meeting", ""))
	require.NoError(t, err)

	assert.Equal(t, "Meeting", got.Summary)
	assert.Equal(t, "2024-06-03T09:00:00", got.Start.DateTime)
	assert.Equal(t, "UTC", got.Start.TimeZone)
	assert.Equal(t, "2024-06-03T10:00:00", got.End.DateTime)
	assert.Equal(t, "UTC", got.End.TimeZone)
}

func TestNewFromFilesMissingArtifacts(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFromFiles(context.Background(), filepath.Join(dir, "credentials.json"), filepath.Join(dir, "token.json"))
	assert.True(t, errors.Is(err, domain.ErrUnavailable))

	creds := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{"installed":{"client_id":"id","client_secret":"secret",
		"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",
		"redirect_uris":["http://localhost"]}}`), 0o600))

	_, err = NewFromFiles(context.Background(), creds, filepath.Join(dir, "token.json"))
	assert.True(t, errors.Is(err, domain.ErrUnavailable), "token file still missing")
}

func TestNewFromFilesWithToken(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	token := filepath.Join(dir, "token.json")

	require.NoError(t, os.WriteFile(creds, []byte(`{"installed":{"client_id":"id","client_secret":"secret",
		"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token",
		"redirect_uris":["http://localhost"]}}`), 0o600))
	require.NoError(t, os.WriteFile(token, []byte(`{"access_token":"abc","token_type":"Bearer","refresh_token":"r",
		"expiry":"2999-01-01T00:00:00Z"}`), 0o600))

	cal, err := NewFromFiles(context.Background(), creds, token)
	require.NoError(t, err)
	assert.Equal(t, "google", cal.Name())
}
