package repositories

import (
	"context"

	"gorm.io/gorm"

	"kissan/internal/models/db_models"
)

type SchemeRepository interface {
	ListAll(ctx context.Context) ([]db_models.Scheme, error)
}

type schemeRepository struct {
	db *gorm.DB
}

func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{db: db}
}

func (s *schemeRepository) ListAll(ctx context.Context) ([]db_models.Scheme, error) {
	var schemes []db_models.Scheme
	err := s.db.WithContext(ctx).Order("code ASC").Find(&schemes).Error
	return schemes, err
}
