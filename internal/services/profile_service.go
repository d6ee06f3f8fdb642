package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kissan/internal/models/db_models"
	"kissan/internal/models/request_models"
	"kissan/internal/models/response_models"
	"kissan/internal/repositories"
	"kissan/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error)
	SaveProfile(ctx context.Context, accountID uuid.UUID, request request_models.SaveProfileRequest) (*response_models.ProfileResponse, error)
	// IsProfileComplete issues exactly one profile read and reports whether
	// the location field is filled. Fails closed: any fetch error counts as
	// incomplete so the completion prompt is never hidden by mistake.
	IsProfileComplete(ctx context.Context, accountID uuid.UUID) bool
}

type profilePreferences struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (p *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*response_models.ProfileResponse, error) {
	profile, err := p.profileRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func (p *ProfileService) SaveProfile(ctx context.Context, accountID uuid.UUID, request request_models.SaveProfileRequest) (*response_models.ProfileResponse, error) {
	prefs, err := json.Marshal(profilePreferences{
		Language: request.Language,
		Theme:    request.Theme,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	profile := &db_models.Profile{
		AccountID:   accountID,
		DisplayName: request.DisplayName,
		FarmName:    request.FarmName,
		Location:    request.Location,
		FarmingType: request.FarmingType,
		LandSize:    request.LandSize,
		PrimaryCrop: request.PrimaryCrop,
		Preferences: datatypes.JSON(prefs),
	}

	if err := p.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toProfileResponse(profile), nil
}

func (p *ProfileService) IsProfileComplete(ctx context.Context, accountID uuid.UUID) bool {
	profile, err := p.profileRepo.FindByAccount(ctx, accountID)
	if err != nil || profile == nil {
		return false
	}
	return profile.IsComplete()
}

func toProfileResponse(profile *db_models.Profile) *response_models.ProfileResponse {
	var prefs profilePreferences
	if len(profile.Preferences) > 0 {
		// Preferences are optional; a bad blob just renders defaults.
		_ = json.Unmarshal(profile.Preferences, &prefs)
	}

	return &response_models.ProfileResponse{
		DisplayName: profile.DisplayName,
		FarmName:    profile.FarmName,
		Location:    profile.Location,
		FarmingType: profile.FarmingType,
		LandSize:    profile.LandSize,
		PrimaryCrop: profile.PrimaryCrop,
		Language:    prefs.Language,
		Theme:       prefs.Theme,
		Complete:    profile.IsComplete(),
		UpdatedAt:   profile.UpdatedAt,
	}
}
