package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kissan/internal/models/db_models"
)

type PlotRepository interface {
	ListByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Plot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plot, error)
	Insert(ctx context.Context, plot *db_models.Plot) error
	Update(ctx context.Context, plot *db_models.Plot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type plotRepository struct {
	db *gorm.DB
}

func NewPlotRepository(db *gorm.DB) PlotRepository {
	return &plotRepository{db: db}
}

func (p *plotRepository) ListByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Plot, error) {
	var plots []db_models.Plot
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&plots).Error
	return plots, err
}

func (p *plotRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plot, error) {
	var plot db_models.Plot
	err := p.db.WithContext(ctx).First(&plot, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plot, nil
}

func (p *plotRepository) Insert(ctx context.Context, plot *db_models.Plot) error {
	return p.db.WithContext(ctx).Create(plot).Error
}

func (p *plotRepository) Update(ctx context.Context, plot *db_models.Plot) error {
	return p.db.WithContext(ctx).Save(plot).Error
}

func (p *plotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return p.db.WithContext(ctx).Delete(&db_models.Plot{}, "id = ?", id).Error
}
