package crm

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	domaincrm "github.com/bizos/backend/internal/domain/crm"
	"github.com/bizos/backend/internal/domain/shared"
)

// MockClientRepository is a mock implementation of crm.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domaincrm.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincrm.Client), args.Error(1)
}

func (m *MockClientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*domaincrm.Client, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domaincrm.Client), args.Error(1)
}

func (m *MockClientRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]domaincrm.Client, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]domaincrm.Client), args.Error(1)
}

func (m *MockClientRepository) FindByStatus(ctx context.Context, ownerID uuid.UUID, status domaincrm.ClientStatus, filter shared.Filter) ([]domaincrm.Client, error) {
	args := m.Called(ctx, ownerID, status, filter)
	return args.Get(0).([]domaincrm.Client), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *domaincrm.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockClientRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return g.response, g.err
}

func (g *stubGenerator) GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string, schema *genai.Schema) (string, error) {
	return g.response, g.err
}

func (g *stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.response, g.err
}

func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("create starts as Lead", func(t *testing.T) {
		repo := new(MockClientRepository)
		repo.On("Save", ctx, mock.AnythingOfType("*crm.Client")).Return(nil)

		resp, err := NewClientService(repo, &stubGenerator{}).Create(ctx, ownerID, CreateClientRequest{
			Name:    "Globex",
			Email:   "Sales@Globex.com",
			Company: "Globex Corp",
		})
		require.NoError(t, err)
		assert.Equal(t, "Lead", resp.Status)
		assert.Equal(t, "sales@globex.com", resp.Email)
	})

	t.Run("status moves are caller-driven", func(t *testing.T) {
		client, err := domaincrm.NewClient(ownerID, "Globex", "", "")
		require.NoError(t, err)

		repo := new(MockClientRepository)
		repo.On("FindByIDForOwner", ctx, ownerID, client.ID).Return(client, nil)
		repo.On("Save", ctx, client).Return(nil)

		svc := NewClientService(repo, &stubGenerator{})
		resp, err := svc.UpdateStatus(ctx, ownerID, client.ID, UpdateClientStatusRequest{Status: "Proposal"})
		require.NoError(t, err)
		assert.Equal(t, "Proposal", resp.Status)

		_, err = svc.UpdateStatus(ctx, ownerID, client.ID, UpdateClientStatusRequest{Status: "Lukewarm"})
		assert.Error(t, err)
	})

	t.Run("list filters by funnel stage", func(t *testing.T) {
		client, err := domaincrm.NewClient(ownerID, "Globex", "", "")
		require.NoError(t, err)

		repo := new(MockClientRepository)
		repo.On("FindByStatus", ctx, ownerID, domaincrm.ClientStatusLead, mock.AnythingOfType("shared.Filter")).
			Return([]domaincrm.Client{*client}, nil)
		repo.On("CountForOwner", ctx, ownerID, mock.AnythingOfType("shared.Filter")).
			Return(int64(1), nil)

		result, err := NewClientService(repo, &stubGenerator{}).List(ctx, ownerID, ClientListFilter{Status: "Lead"})
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Globex", result.Items[0].Name)
	})
}

func TestDraftFollowUp(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	client, err := domaincrm.NewClient(ownerID, "Globex", "sales@globex.com", "Globex Corp")
	require.NoError(t, err)

	const followUpJSON = `{"subject": "Checking in", "body": "Hi Globex team...", "suggestedNextStep": "Book a demo", "timing": "within 2 days"}`

	repo := new(MockClientRepository)
	repo.On("FindByIDForOwner", ctx, ownerID, client.ID).Return(client, nil)

	resp, err := NewClientService(repo, &stubGenerator{response: followUpJSON}).
		DraftFollowUp(ctx, ownerID, LeadFollowUpRequest{ClientID: client.ID, Notes: "met at expo"})
	require.NoError(t, err)

	assert.Equal(t, "Checking in", resp.Subject)
	assert.Equal(t, "Book a demo", resp.SuggestedNextStep)
}
