package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kissan/internal/models/db_models"
	"kissan/internal/models/request_models"
	"kissan/pkg/utils"
)

type fakePlotRepo struct {
	plots    []db_models.Plot
	byID     *db_models.Plot
	inserted *db_models.Plot
	updated  *db_models.Plot
	deleted  []uuid.UUID
}

func (f *fakePlotRepo) ListByOwner(ctx context.Context, accountID uuid.UUID) ([]db_models.Plot, error) {
	return f.plots, nil
}

func (f *fakePlotRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Plot, error) {
	return f.byID, nil
}

func (f *fakePlotRepo) Insert(ctx context.Context, plot *db_models.Plot) error {
	f.inserted = plot
	return nil
}

func (f *fakePlotRepo) Update(ctx context.Context, plot *db_models.Plot) error {
	f.updated = plot
	return nil
}

func (f *fakePlotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func validPlotRequest() request_models.SavePlotRequest {
	return request_models.SavePlotRequest{
		Name: "North Field",
		Crop: "Wheat",
		Area: "5.5",
	}
}

func TestCreatePlot(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("valid request persists with parsed area and default status", func(t *testing.T) {
		repo := &fakePlotRepo{}
		svc := NewPlotService(repo)

		resp, err := svc.CreatePlot(ctx, owner, validPlotRequest())
		require.NoError(t, err)
		assert.Equal(t, 5.5, resp.Area)
		assert.Equal(t, string(db_models.PlotStatusPreparation), resp.Status)

		require.NotNil(t, repo.inserted)
		assert.Equal(t, owner, repo.inserted.AccountID)
	})

	t.Run("explicit status is honored", func(t *testing.T) {
		repo := &fakePlotRepo{}
		svc := NewPlotService(repo)

		req := validPlotRequest()
		req.Status = string(db_models.PlotStatusActive)
		resp, err := svc.CreatePlot(ctx, owner, req)
		require.NoError(t, err)
		assert.Equal(t, string(db_models.PlotStatusActive), resp.Status)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc := NewPlotService(&fakePlotRepo{})

		cases := []struct {
			name   string
			mutate func(*request_models.SavePlotRequest)
		}{
			{"blank name", func(r *request_models.SavePlotRequest) { r.Name = "  " }},
			{"blank crop", func(r *request_models.SavePlotRequest) { r.Crop = "" }},
			{"non-numeric area", func(r *request_models.SavePlotRequest) { r.Area = "five" }},
			{"zero area", func(r *request_models.SavePlotRequest) { r.Area = "0" }},
			{"negative area", func(r *request_models.SavePlotRequest) { r.Area = "-2" }},
			{"unknown status", func(r *request_models.SavePlotRequest) { r.Status = "Fallow" }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validPlotRequest()
				tc.mutate(&req)
				_, err := svc.CreatePlot(ctx, owner, req)
				assert.ErrorIs(t, err, utils.ErrValidation)
			})
		}
	})
}

func TestUpdatePlot(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	plotID := uuid.New()

	t.Run("owner can update", func(t *testing.T) {
		repo := &fakePlotRepo{byID: &db_models.Plot{
			BaseModel: db_models.BaseModel{ID: plotID},
			AccountID: owner,
			Name:      "Old Name",
			Status:    db_models.PlotStatusPreparation,
		}}
		svc := NewPlotService(repo)

		req := validPlotRequest()
		req.Status = string(db_models.PlotStatusHarvested)
		resp, err := svc.UpdatePlot(ctx, owner, plotID, req)
		require.NoError(t, err)
		assert.Equal(t, "North Field", resp.Name)
		assert.Equal(t, string(db_models.PlotStatusHarvested), resp.Status)
		require.NotNil(t, repo.updated)
	})

	t.Run("someone else's plot reads as not found", func(t *testing.T) {
		repo := &fakePlotRepo{byID: &db_models.Plot{
			BaseModel: db_models.BaseModel{ID: plotID},
			AccountID: uuid.New(),
		}}
		svc := NewPlotService(repo)

		_, err := svc.UpdatePlot(ctx, owner, plotID, validPlotRequest())
		assert.ErrorIs(t, err, utils.ErrPlotNotFound)
	})
}

func TestDeletePlot(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	plotID := uuid.New()

	t.Run("owner can delete", func(t *testing.T) {
		repo := &fakePlotRepo{byID: &db_models.Plot{
			BaseModel: db_models.BaseModel{ID: plotID},
			AccountID: owner,
		}}
		svc := NewPlotService(repo)

		require.NoError(t, svc.DeletePlot(ctx, owner, plotID))
		assert.Equal(t, []uuid.UUID{plotID}, repo.deleted)
	})

	t.Run("missing plot is not found", func(t *testing.T) {
		svc := NewPlotService(&fakePlotRepo{})
		assert.ErrorIs(t, svc.DeletePlot(ctx, owner, plotID), utils.ErrPlotNotFound)
	})
}
