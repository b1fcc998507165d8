package guest_test

import (
	"context"
	"encoding/json"
	"errors"
	"frontdesk/infras/backend"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/handlers/guest"
	"frontdesk/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service *mocks.MockGuestService
	router  chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	service := mocks.NewMockGuestService(gomock.NewController(t))
	handler := guest.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(backend.ContextWithSession(r.Context(), backend.NewSession("token"))))
		})
	})
	handler.Router(router)

	return fixture{service: service, router: router}
}

func (f fixture) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

const guestBody = `{"first_name":"Aigerim","last_name":"Nurlanovna","nationality":3,"date_of_birth":"1990-04-12"}`

func TestListGuestsFilter(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   dto.ListGuestsFilter
	}{
		{name: "everyone", target: "/guests/", want: dto.ListGuestsFilter{}},
		{name: "search", target: "/guests/?search=smith", want: dto.ListGuestsFilter{Search: "smith"}},
		{name: "blacklisted only", target: "/guests/?blacklisted=true", want: dto.ListGuestsFilter{BlacklistedOnly: true}},
		{name: "unparseable flag lists everyone", target: "/guests/?blacklisted=maybe", want: dto.ListGuestsFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			f.service.EXPECT().
				List(gomock.Any(), backend.NewSession("token"), tt.want).
				Return(dto.ListGuestsResponse{Guests: []model.Guest{{ID: 1}}, Stats: model.Stats{Total: 1, Active: 1}}, nil)

			rec := f.do(http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Data dto.ListGuestsResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, 1, body.Data.Stats.Active)
		})
	}
}

func TestCreateGuest(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ backend.Session, req dto.SaveGuestRequest) (model.Guest, error) {
				assert.Equal(t, int64(3), req.Nationality)

				return model.Guest{ID: 12}, nil
			})

		rec := f.do(http.MethodPost, "/guests/", guestBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":12`)
	})

	t.Run("missing date of birth never reaches the service", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/guests/", `{"first_name":"A","last_name":"B","nationality":3}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "date_of_birth is required")
	})
}

func TestUpdateGuest(t *testing.T) {
	t.Run("forwards the id", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Update(gomock.Any(), gomock.Any(), int64(4), gomock.Any()).Return(model.Guest{ID: 4}, nil)

		rec := f.do(http.MethodPut, "/guests/4", guestBody)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPut, "/guests/four", guestBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteGuest(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).
		Return(failure.Upstream(http.StatusNotFound, "Not found.", errors.New("404")))

	rec := f.do(http.MethodDelete, "/guests/4", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlacklist(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Blacklist(gomock.Any(), gomock.Any(), int64(5), dto.BlacklistRequest{Reason: "Unpaid minibar"}).Return(nil)

		rec := f.do(http.MethodPost, "/guests/5/blacklist", `{"reason":"Unpaid minibar"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Guest added to the blacklist")
	})

	t.Run("add without a reason", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/guests/5/blacklist", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "reason is required")
	})

	t.Run("remove", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Unblacklist(gomock.Any(), gomock.Any(), int64(5)).Return(nil)

		rec := f.do(http.MethodDelete, "/guests/5/blacklist", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestNationalities(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Nationalities(gomock.Any(), gomock.Any()).
			Return(dto.ListNationalitiesResponse{Nationalities: []model.Nationality{{ID: 1, Nationality: "Казахстан", Code: "KZ"}}}, nil)

		rec := f.do(http.MethodGet, "/nationalities/", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"KZ"`)
	})

	t.Run("create", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().CreateNationality(gomock.Any(), gomock.Any(), dto.CreateNationalityRequest{Nationality: "Кыргызстан", Code: "KG"}).
			Return(model.Nationality{ID: 9}, nil)

		rec := f.do(http.MethodPost, "/nationalities/", `{"nationality":"Кыргызстан","code":"KG"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("backend down", func(t *testing.T) {
		f := setup(t)

		f.service.EXPECT().Nationalities(gomock.Any(), gomock.Any()).
			Return(dto.ListNationalitiesResponse{}, failure.Upstream(0, "backend unreachable", errors.New("dial")))

		rec := f.do(http.MethodGet, "/nationalities/", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
