package services

import (
	"context"
	"strings"

	"kissan/internal/models/db_models"
	"kissan/internal/models/response_models"
	"kissan/internal/repositories"
	"kissan/pkg/utils"
)

type SchemeServiceInterface interface {
	ListSchemes(ctx context.Context, search, category string) ([]response_models.SchemeResponse, error)
}

type SchemeService struct {
	schemeRepo repositories.SchemeRepository
}

func NewSchemeService(schemeRepo repositories.SchemeRepository) SchemeServiceInterface {
	return &SchemeService{schemeRepo: schemeRepo}
}

// ListSchemes filters the catalogue: search matches title or description
// case-insensitively, category matches exactly with "All" meaning no
// filter.
func (s *SchemeService) ListSchemes(ctx context.Context, search, category string) ([]response_models.SchemeResponse, error) {
	schemes, err := s.schemeRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	term := strings.ToLower(search)
	out := make([]response_models.SchemeResponse, 0, len(schemes))
	for i := range schemes {
		scheme := &schemes[i]
		if category != "" && category != AllFilter && scheme.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(scheme.Title), term) &&
			!strings.Contains(strings.ToLower(scheme.Description), term) {
			continue
		}
		out = append(out, toSchemeResponse(scheme))
	}
	return out, nil
}

func toSchemeResponse(scheme *db_models.Scheme) response_models.SchemeResponse {
	return response_models.SchemeResponse{
		ID:          scheme.Code,
		Title:       scheme.Title,
		Description: scheme.Description,
		Category:    scheme.Category,
		Deadline:    scheme.Deadline,
		Status:      scheme.Status,
		Link:        scheme.Link,
		Tags:        scheme.Tags,
	}
}
