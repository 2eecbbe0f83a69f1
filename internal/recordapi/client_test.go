package recordapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-dashboard/internal/domain"
	"course-dashboard/internal/httpx"
)

var testApps = AppIDs{
	Instructors:   "app-instructors",
	Participants:  "app-participants",
	Rooms:         "app-rooms",
	Courses:       "app-courses",
	Registrations: "app-registrations",
}

func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListCoursesKeepsServiceOrder(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/apps/app-courses/records": `{
			"zz9": {"record_id": "zz9", "createdat": "2025-01-02T10:00:00", "fields": {"titel": "Go Grundlagen", "status": "aktiv", "preis": 120.5}},
			"aa1": {"createdat": "2025-01-03T10:00:00", "updatedat": null, "fields": {"titel": "Projektmanagement", "startdatum": "2025-04-01"}}
		}`,
	})

	c := New(srv.URL, "secret", testApps, 5*time.Second)
	courses, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.Equal(t, "zz9", courses[0].ID)
	assert.Equal(t, "Go Grundlagen", *courses[0].Fields.Title)
	assert.Equal(t, domain.StatusActive, *courses[0].Fields.Status)
	assert.InDelta(t, 120.5, *courses[0].Fields.Price, 1e-9)

	assert.Equal(t, "aa1", courses[1].ID, "id falls back to the object key")
	assert.Nil(t, courses[1].UpdatedAt)
	assert.Nil(t, courses[1].Fields.Status)
	assert.Equal(t, "2025-04-01", *courses[1].Fields.StartDate)
}

func TestListRegistrationsFromArray(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/apps/app-registrations/records": `[
			{"record_id": "r1", "createdat": "2025-02-01T08:00:00Z", "fields": {"kurs": "https://x/apps/k/records/c1", "bezahlt": true}},
			{"record_id": "r2", "createdat": "2025-02-02T08:00:00Z", "fields": {}}
		]`,
	})

	c := New(srv.URL, "secret", testApps, 5*time.Second)
	regs, err := c.ListRegistrations(context.Background())
	require.NoError(t, err)
	require.Len(t, regs, 2)
	assert.True(t, regs[0].Fields.IsPaid())
	assert.False(t, regs[1].Fields.IsPaid())
}

func TestListAllCollections(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/apps/app-instructors/records":  `{"i1": {"fields": {"name": "Anna Schmidt", "fachgebiet": "Go"}}}`,
		"/apps/app-participants/records": `{"p1": {"fields": {"name": "Max Muster", "geburtsdatum": "1990-05-01"}}}`,
		"/apps/app-rooms/records":        `{"r1": {"fields": {"raumname": "A101", "kapazitaet": 20}}}`,
	})
	c := New(srv.URL+"/", "secret", testApps, 5*time.Second)
	ctx := context.Background()

	instructors, err := c.ListInstructors(ctx)
	require.NoError(t, err)
	require.Len(t, instructors, 1)
	assert.Equal(t, "Anna Schmidt", *instructors[0].Fields.Name)

	participants, err := c.ListParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, participants, 1)
	assert.Equal(t, "p1", participants[0].ID)

	rooms, err := c.ListRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, 20, *rooms[0].Fields.Capacity)
}

func TestListEmptyBodies(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/apps/app-rooms/records":   `{}`,
		"/apps/app-courses/records": `null`,
	})
	c := New(srv.URL, "secret", testApps, 5*time.Second)

	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rooms)
	assert.Empty(t, rooms)

	courses, err := c.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListReturnsHTTPError(t *testing.T) {
	srv := newTestServer(t, map[string]string{})
	c := New(srv.URL, "secret", testApps, 5*time.Second)

	_, err := c.ListCourses(context.Background())
	require.Error(t, err)

	var herr *httpx.HTTPError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, http.StatusNotFound, herr.StatusCode)
}

func TestListRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"/apps/app-courses/records": `{"c1": {"fields": {"preis": "teuer"}}}`,
	})
	c := New(srv.URL, "secret", testApps, 5*time.Second)

	_, err := c.ListCourses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode app app-courses")
}

func TestListMissingAppID(t *testing.T) {
	c := New("http://127.0.0.1:0", "", AppIDs{}, time.Second)
	_, err := c.ListRooms(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing app id")
}

func TestNoAPIKeyHeaderWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["X-Api-Key"]
		assert.False(t, present)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", testApps, time.Second)
	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestDecodeRecordsRejectsScalar(t *testing.T) {
	_, err := decodeRecords[domain.RoomFields]([]byte(`42`))
	require.Error(t, err)
}

func TestWithMaxAttempts(t *testing.T) {
	c := New("http://records.test", "", testApps, time.Second)
	assert.Equal(t, 1, c.Retry.MaxAttempts)

	c.WithMaxAttempts(4)
	assert.Equal(t, 4, c.Retry.MaxAttempts)
	assert.True(t, c.Retry.Retry5xx)

	c.WithMaxAttempts(0)
	assert.Equal(t, 1, c.Retry.MaxAttempts)
}

func TestListRetriesWhenEnabled(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"r1": {"fields": {"raumname": "B2"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "", testApps, 5*time.Second).WithMaxAttempts(2)
	c.Retry.BaseDelay = time.Millisecond
	c.Retry.MaxDelay = 5 * time.Millisecond

	rooms, err := c.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.EqualValues(t, 2, calls.Load())
}

func TestDecodeRecordsToleratesEnvelopeTimestamps(t *testing.T) {
	body := []byte(`{
		"a": {"createdat": "2025-02-19T10:15:00.000+0100", "updatedat": "gestern", "fields": {"titel": "Go"}},
		"b": {"createdat": 1739960100, "fields": {"titel": "Excel"}}
	}`)

	courses, err := decodeRecords[domain.CourseFields](body)
	require.NoError(t, err)
	require.Len(t, courses, 2)

	assert.True(t, courses[0].CreatedAt.Equal(time.Date(2025, 2, 19, 9, 15, 0, 0, time.UTC)))
	require.NotNil(t, courses[0].UpdatedAt)
	assert.True(t, courses[0].UpdatedAt.IsZero())
	assert.True(t, courses[1].CreatedAt.IsZero())
	assert.Equal(t, "Excel", *courses[1].Fields.Title)
}
