package repository_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/infras/backend"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/shared/failure"
)

var session = backend.Session{Token: "t"}

func newRepository(t *testing.T, handler http.HandlerFunc) repository.Booking {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := backend.NewWithHTTPClient(server.URL+"/api/", server.Client(), mocks.NewOtel())

	return repository.New(client, mocks.NewOtel())
}

func TestBookingRepository_Create(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		wantID *int64
	}{
		{name: "echo under id", status: http.StatusCreated, body: `{"id": 41, "guest": 1}`, wantID: int64Ptr(41)},
		{name: "echo under pk", status: http.StatusCreated, body: `{"pk": 42}`, wantID: int64Ptr(42)},
		{name: "empty body", status: http.StatusCreated, body: ``},
		{name: "no content", status: http.StatusNoContent, body: ``},
		{name: "empty object", status: http.StatusCreated, body: `{}`},
		{name: "null", status: http.StatusCreated, body: `null`},
		{name: "plain text", status: http.StatusCreated, body: `created`},
		{name: "id of the wrong type", status: http.StatusCreated, body: `{"id": "forty"}`},
		{name: "array", status: http.StatusCreated, body: `[{"id": 43}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/bookings/", r.URL.Path)
				assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			booking, err := repo.Create(context.Background(), session, map[string]any{"guest": 1})

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, booking.EchoedID())
		})
	}

	t.Run("backend rejection keeps its status and detail", func(t *testing.T) {
		repo := newRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"room": ["This room is already booked."]}`))
		})

		_, err := repo.Create(context.Background(), session, map[string]any{"guest": 1})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Contains(t, err.Error(), "This room is already booked.")
	})
}

func TestBookingRepository_ListRecent(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		assert.Equal(t, "-id", r.URL.Query().Get("ordering"))

		_, _ = w.Write([]byte(`{"next": "ignored", "results": [{"id": 9}, {"id": 8}]}`))
	})

	bookings, err := repo.ListRecent(context.Background(), session, 10)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(9), bookings[0].ID)
}

func TestBookingRepository_Patch(t *testing.T) {
	repo := newRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/bookings/7/", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var fields map[string]any
		assert.NoError(t, json.Unmarshal(body, &fields))
		assert.Equal(t, float64(12), fields["agent"])

		_, _ = w.Write([]byte(`{"id": 7, "agent": 12}`))
	})

	require.NoError(t, repo.Patch(context.Background(), session, 7, map[string]any{"agent": 12}))
}

func int64Ptr(v int64) *int64 {
	return &v
}
