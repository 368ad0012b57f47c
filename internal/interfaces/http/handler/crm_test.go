package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	crmapp "github.com/bizos/backend/internal/application/crm"
	"github.com/bizos/backend/internal/domain/crm"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/interfaces/http/dto"
	"github.com/bizos/backend/internal/interfaces/http/middleware"
)

type mockClientRepository struct {
	mock.Mock
}

func (m *mockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*crm.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Client), args.Error(1)
}

func (m *mockClientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*crm.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crm.Client), args.Error(1)
}

func (m *mockClientRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]crm.Client, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Client), args.Error(1)
}

func (m *mockClientRepository) FindByStatus(ctx context.Context, ownerID uuid.UUID, status crm.ClientStatus, filter shared.Filter) ([]crm.Client, error) {
	args := m.Called(ctx, ownerID, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]crm.Client), args.Error(1)
}

func (m *mockClientRepository) Save(ctx context.Context, client *crm.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *mockClientRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *mockClientRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// newCRMTestServer wires a CRM handler behind a fake auth middleware that
// injects ownerID, mirroring the production chain without real keys.
func newCRMTestServer(repo *mockClientRepository, ownerID uuid.UUID) *gin.Engine {
	engine := gin.New()
	authed := engine.Group("/api/v1/modules")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.OwnerIDKey, ownerID)
		c.Next()
	})

	h := NewCRMHandler(crmapp.NewClientService(repo, nil))
	h.RegisterRoutes(authed)
	return engine
}

func TestCRMHandlerCreateClient(t *testing.T) {
	ownerID := uuid.New()
	repo := new(mockClientRepository)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*crm.Client")).Return(nil)

	engine := newCRMTestServer(repo, ownerID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/modules/crm/clients",
		jsonBody(`{"name":"Acme Corp","email":"buyer@acme.example","company":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	repo.AssertExpectations(t)
}

func TestCRMHandlerCreateClientValidation(t *testing.T) {
	engine := newCRMTestServer(new(mockClientRepository), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/modules/crm/clients",
		jsonBody(`{"email":"not-an-email"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

	fields := map[string]bool{}
	for _, d := range resp.Error.Details {
		fields[d.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["email"])
}

func TestCRMHandlerGetClientNotFound(t *testing.T) {
	ownerID := uuid.New()
	repo := new(mockClientRepository)
	repo.On("FindByIDForOwner", mock.Anything, ownerID, mock.Anything).Return(nil, shared.ErrNotFound)

	engine := newCRMTestServer(repo, ownerID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/modules/crm/clients/"+uuid.NewString(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}

func TestCRMHandlerGetClientBadID(t *testing.T) {
	engine := newCRMTestServer(new(mockClientRepository), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/modules/crm/clients/not-a-uuid", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCRMHandlerRequiresAuth(t *testing.T) {
	// No auth middleware: owner ID never lands in the context.
	engine := gin.New()
	group := engine.Group("/api/v1/modules")
	h := NewCRMHandler(crmapp.NewClientService(new(mockClientRepository), nil))
	h.RegisterRoutes(group)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/modules/crm/clients", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error.Code)
}

func TestCRMHandlerDeleteClient(t *testing.T) {
	ownerID := uuid.New()
	id := uuid.New()
	repo := new(mockClientRepository)
	repo.On("Delete", mock.Anything, ownerID, id).Return(nil)

	engine := newCRMTestServer(repo, ownerID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/modules/crm/clients/"+id.String(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	repo.AssertExpectations(t)
}
