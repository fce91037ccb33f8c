package manufacturers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/venturehub/venturehub-backend/pkg/db/models"
	pkgerrors "github.com/venturehub/venturehub-backend/pkg/errors"
)

type stubRepo struct {
	profile     *models.ManufacturerProfile
	lastUpdates map[string]any
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.ManufacturerProfile, error) {
	if s.profile == nil || s.profile.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}

func (s *stubRepo) Update(_ context.Context, id uuid.UUID, updates map[string]any) (*models.ManufacturerProfile, error) {
	s.lastUpdates = updates
	if name, ok := updates["company_name"].(string); ok {
		s.profile.CompanyName = name
	}
	if capacity, ok := updates["production_capacity"].(int); ok {
		s.profile.ProductionCapacity = capacity
	}
	return s.profile, nil
}

func testProfile() *models.ManufacturerProfile {
	return &models.ManufacturerProfile{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		CompanyName:        "Precision Works",
		Industry:           "Hardware",
		ProductionCapacity: 1_000,
		Location:           "Detroit",
	}
}

func TestUpdateProfileAppliesFields(t *testing.T) {
	repo := &stubRepo{profile: testProfile()}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	newName := "Precision Works Intl"
	newCapacity := 2_500
	updated, err := svc.UpdateProfile(context.Background(), repo.profile.ID, UpdateManufacturerProfileDTO{
		CompanyName:        &newName,
		ProductionCapacity: &newCapacity,
	})
	require.NoError(t, err)

	assert.Equal(t, newName, updated.CompanyName)
	assert.Equal(t, newCapacity, updated.ProductionCapacity)
	assert.Contains(t, repo.lastUpdates, "company_name")
	assert.Contains(t, repo.lastUpdates, "production_capacity")
	assert.NotContains(t, repo.lastUpdates, "location")
}

func TestUpdateProfileUnknownID(t *testing.T) {
	repo := &stubRepo{profile: testProfile()}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	newName := "Ghost Works"
	_, err = svc.UpdateProfile(context.Background(), uuid.New(), UpdateManufacturerProfileDTO{
		CompanyName: &newName,
	})
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
	assert.Nil(t, repo.lastUpdates)
}

func TestProfileUnknownID(t *testing.T) {
	repo := &stubRepo{profile: testProfile()}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	_, err = svc.Profile(context.Background(), uuid.New())
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}

func TestProfileRequiresID(t *testing.T) {
	repo := &stubRepo{profile: testProfile()}
	svc, err := NewService(ServiceParams{Repo: repo})
	require.NoError(t, err)

	_, err = svc.Profile(context.Background(), uuid.Nil)
	require.Error(t, err)

	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
}
