package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/internal/models/db_models"
	"kissan/internal/models/request_models"
	"kissan/pkg/utils"
)

type fakeProfileRepo struct {
	profile *db_models.Profile
	findErr error
	saved   *db_models.Profile
}

func (f *fakeProfileRepo) FindByAccount(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	return f.profile, f.findErr
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *db_models.Profile) error {
	f.saved = profile
	return nil
}

func TestIsProfileComplete(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("filled location counts as complete", func(t *testing.T) {
		repo := &fakeProfileRepo{profile: &db_models.Profile{Location: "Ludhiana, Punjab"}}
		svc := NewProfileService(repo)
		assert.True(t, svc.IsProfileComplete(ctx, accountID))
	})

	t.Run("blank location is incomplete", func(t *testing.T) {
		repo := &fakeProfileRepo{profile: &db_models.Profile{Location: "   "}}
		svc := NewProfileService(repo)
		assert.False(t, svc.IsProfileComplete(ctx, accountID))
	})

	t.Run("missing profile is incomplete", func(t *testing.T) {
		svc := NewProfileService(&fakeProfileRepo{})
		assert.False(t, svc.IsProfileComplete(ctx, accountID))
	})

	t.Run("fetch error fails closed", func(t *testing.T) {
		repo := &fakeProfileRepo{
			profile: &db_models.Profile{Location: "Ludhiana"},
			findErr: errors.New("connection refused"),
		}
		svc := NewProfileService(repo)
		assert.False(t, svc.IsProfileComplete(ctx, accountID))
	})
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	t.Run("missing profile is a typed error", func(t *testing.T) {
		svc := NewProfileService(&fakeProfileRepo{})
		_, err := svc.GetProfile(ctx, accountID)
		assert.ErrorIs(t, err, utils.ErrProfileNotFound)
	})

	t.Run("response carries the completion flag", func(t *testing.T) {
		repo := &fakeProfileRepo{profile: &db_models.Profile{
			DisplayName: "Ramesh",
			Location:    "Karnal, Haryana",
			PrimaryCrop: "Wheat",
		}}
		svc := NewProfileService(repo)

		resp, err := svc.GetProfile(ctx, accountID)
		require.NoError(t, err)
		assert.True(t, resp.Complete)
		assert.Equal(t, "Ramesh", resp.DisplayName)
	})
}

func TestSaveProfile(t *testing.T) {
	ctx := context.Background()
	accountID := uuid.New()

	repo := &fakeProfileRepo{}
	svc := NewProfileService(repo)

	resp, err := svc.SaveProfile(ctx, accountID, request_models.SaveProfileRequest{
		DisplayName: "Ramesh",
		FarmName:    "Green Acres",
		Location:    "Karnal, Haryana",
		FarmingType: "Organic",
		LandSize:    "5 acres",
		PrimaryCrop: "Wheat",
		Language:    "hi",
		Theme:       "dark",
	})
	require.NoError(t, err)

	assert.True(t, resp.Complete)
	assert.Equal(t, "hi", resp.Language)
	assert.Equal(t, "dark", resp.Theme)

	require.NotNil(t, repo.saved)
	assert.Equal(t, accountID, repo.saved.AccountID)
	assert.JSONEq(t, `{"language":"hi","theme":"dark"}`, string(repo.saved.Preferences))
}
