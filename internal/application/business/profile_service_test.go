package business

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainbusiness "github.com/bizos/backend/internal/domain/business"
	"github.com/bizos/backend/internal/domain/shared"
	"github.com/bizos/backend/internal/infrastructure/storage"
)

// MockProfileRepository is a mock implementation of business.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainbusiness.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainbusiness.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*domainbusiness.Profile, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainbusiness.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *domainbusiness.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) ExistsForOwner(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	args := m.Called(ctx, ownerID)
	return args.Bool(0), args.Error(1)
}

func newService(repo *MockProfileRepository) *ProfileService {
	return NewProfileService(repo, storage.NewMemoryStorage(), zap.NewNop())
}

func TestOnboard(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("creates profile with default modules", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("ExistsForOwner", ctx, ownerID).Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*business.Profile")).Return(nil)

		resp, err := newService(repo).Onboard(ctx, ownerID, OnboardRequest{
			Name:     "Acme Bakery",
			Industry: "Food",
		})
		require.NoError(t, err)

		assert.Equal(t, "Acme Bakery", resp.Name)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Contains(t, resp.EnabledModules, "accounting")
		repo.AssertExpectations(t)
	})

	t.Run("second onboarding is rejected", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("ExistsForOwner", ctx, ownerID).Return(true, nil)

		_, err := newService(repo).Onboard(ctx, ownerID, OnboardRequest{Name: "Twice"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	profile, err := domainbusiness.NewProfile(ownerID, "Acme Bakery", "desc", "Food")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	repo.On("FindByOwner", ctx, ownerID).Return(profile, nil)
	repo.On("Save", ctx, profile).Return(nil)

	newName := "Acme Bakery & Cafe"
	resp, err := newService(repo).Update(ctx, ownerID, UpdateProfileRequest{Name: &newName})
	require.NoError(t, err)

	// Untouched fields survive a partial update.
	assert.Equal(t, "Acme Bakery & Cafe", resp.Name)
	assert.Equal(t, "desc", resp.Description)
	assert.Equal(t, "Food", resp.Industry)
}

func TestSetModules(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("replaces enabled module set", func(t *testing.T) {
		profile, err := domainbusiness.NewProfile(ownerID, "Acme", "", "")
		require.NoError(t, err)

		repo := new(MockProfileRepository)
		repo.On("FindByOwner", ctx, ownerID).Return(profile, nil)
		repo.On("Save", ctx, profile).Return(nil)

		resp, err := newService(repo).SetModules(ctx, ownerID, SetModulesRequest{
			Modules: []string{"crm", "bi"},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"crm", "bi"}, resp.EnabledModules)
	})

	t.Run("unknown module leaves the profile untouched", func(t *testing.T) {
		profile, err := domainbusiness.NewProfile(ownerID, "Acme", "", "")
		require.NoError(t, err)
		before := append([]string(nil), profile.EnabledModules...)

		repo := new(MockProfileRepository)
		repo.On("FindByOwner", ctx, ownerID).Return(profile, nil)

		_, err = newService(repo).SetModules(ctx, ownerID, SetModulesRequest{
			Modules: []string{"crm", "astrology"},
		})
		require.Error(t, err)
		assert.Equal(t, before, profile.EnabledModules)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUploadLogo(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	profile, err := domainbusiness.NewProfile(ownerID, "Acme", "", "")
	require.NoError(t, err)

	repo := new(MockProfileRepository)
	repo.On("FindByOwner", ctx, ownerID).Return(profile, nil)
	repo.On("Save", ctx, profile).Return(nil)

	resp, err := newService(repo).UploadLogo(ctx, ownerID, []byte{0x89, 0x50, 0x4E, 0x47}, "image/png")
	require.NoError(t, err)

	assert.NotEmpty(t, profile.LogoObjectKey)
	assert.NotEmpty(t, resp.LogoURL)

	t.Run("empty file is rejected", func(t *testing.T) {
		_, err := newService(new(MockProfileRepository)).UploadLogo(ctx, ownerID, nil, "image/png")
		assert.Error(t, err)
	})
}
