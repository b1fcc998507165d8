package agent_test

import (
	"context"
	"frontdesk/infras/backend"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/agent/mocks"
	"frontdesk/internal/domains/agent/model"
	"frontdesk/internal/domains/agent/model/dto"
	"frontdesk/internal/handlers/agent"
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
	service *mocks.MockAgentService
	router  chi.Router
}

func setup(t *testing.T) fixture {
	t.Helper()

	service := mocks.NewMockAgentService(gomock.NewController(t))
	handler := agent.New(service, otelMocks.NewOtel())

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

const agentBody = `{"full_title":"Silk Road Travel","IIN_BIN":"180340021234","is_active":false}`

func TestListAgentsPassesSearch(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().List(gomock.Any(), backend.NewSession("token"), "silk").
		Return(dto.ListAgentsResponse{Agents: []model.Agent{}, Stats: model.Stats{Total: 2, Inactive: 2}}, nil)

	rec := f.do(http.MethodGet, "/agents/?search=silk", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inactive":2`)
}

func TestCreateAgent(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ backend.Session, req dto.SaveAgentRequest) (model.Agent, error) {
			require.NotNil(t, req.IsActive)
			assert.False(t, *req.IsActive)
			assert.Equal(t, "180340021234", req.TaxID)

			return model.Agent{ID: 7}, nil
		})

	rec := f.do(http.MethodPost, "/agents/", agentBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateAgent(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Update(gomock.Any(), gomock.Any(), int64(7), gomock.Any()).Return(model.Agent{ID: 7}, nil)

	rec := f.do(http.MethodPut, "/agents/7", agentBody)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSaveAgentErrors(t *testing.T) {
	t.Run("short tax id never reaches the service", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPost, "/agents/", `{"full_title":"Silk Road","IIN_BIN":"123"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "IIN_BIN must be exactly 12 characters long")
	})

	t.Run("invalid path id", func(t *testing.T) {
		f := setup(t)

		rec := f.do(http.MethodPut, "/agents/abc", agentBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteAgent(t *testing.T) {
	f := setup(t)

	f.service.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(7)).Return(nil)

	rec := f.do(http.MethodDelete, "/agents/7", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Agent deleted successfully")
}
