package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"kissan/internal/models/db_models"
	"kissan/internal/models/request_models"
	"kissan/internal/models/response_models"
	"kissan/internal/repositories"
	"kissan/pkg/utils"
)

type PlotServiceInterface interface {
	ListPlots(ctx context.Context, accountID uuid.UUID) ([]response_models.PlotResponse, error)
	CreatePlot(ctx context.Context, accountID uuid.UUID, request request_models.SavePlotRequest) (*response_models.PlotResponse, error)
	UpdatePlot(ctx context.Context, accountID uuid.UUID, plotID uuid.UUID, request request_models.SavePlotRequest) (*response_models.PlotResponse, error)
	DeletePlot(ctx context.Context, accountID uuid.UUID, plotID uuid.UUID) error
}

type PlotService struct {
	plotRepo repositories.PlotRepository
}

func NewPlotService(plotRepo repositories.PlotRepository) PlotServiceInterface {
	return &PlotService{plotRepo: plotRepo}
}

func (p *PlotService) ListPlots(ctx context.Context, accountID uuid.UUID) ([]response_models.PlotResponse, error) {
	plots, err := p.plotRepo.ListByOwner(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PlotResponse, 0, len(plots))
	for i := range plots {
		out = append(out, *toPlotResponse(&plots[i]))
	}
	return out, nil
}

func (p *PlotService) CreatePlot(ctx context.Context, accountID uuid.UUID, request request_models.SavePlotRequest) (*response_models.PlotResponse, error) {
	area, status, err := validatePlot(request)
	if err != nil {
		return nil, err
	}

	plot := &db_models.Plot{
		AccountID: accountID,
		Name:      strings.TrimSpace(request.Name),
		Crop:      strings.TrimSpace(request.Crop),
		Area:      area,
		Location:  strings.TrimSpace(request.Location),
		Status:    status,
	}

	if err := p.plotRepo.Insert(ctx, plot); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPlotResponse(plot), nil
}

func (p *PlotService) UpdatePlot(ctx context.Context, accountID uuid.UUID, plotID uuid.UUID, request request_models.SavePlotRequest) (*response_models.PlotResponse, error) {
	area, status, err := validatePlot(request)
	if err != nil {
		return nil, err
	}

	plot, err := p.plotRepo.FindByID(ctx, plotID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plot == nil || plot.AccountID != accountID {
		return nil, utils.ErrPlotNotFound
	}

	plot.Name = strings.TrimSpace(request.Name)
	plot.Crop = strings.TrimSpace(request.Crop)
	plot.Area = area
	plot.Location = strings.TrimSpace(request.Location)
	if request.Status != "" {
		plot.Status = status
	}

	if err := p.plotRepo.Update(ctx, plot); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toPlotResponse(plot), nil
}

func (p *PlotService) DeletePlot(ctx context.Context, accountID uuid.UUID, plotID uuid.UUID) error {
	plot, err := p.plotRepo.FindByID(ctx, plotID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plot == nil || plot.AccountID != accountID {
		return utils.ErrPlotNotFound
	}
	return p.plotRepo.Delete(ctx, plotID)
}

// validatePlot blocks bad submissions before anything reaches the
// database: name and crop required, area a positive decimal, status from
// the enum (defaulting to Preparation when absent).
func validatePlot(request request_models.SavePlotRequest) (float64, db_models.PlotStatus, error) {
	if strings.TrimSpace(request.Name) == "" {
		return 0, "", fmt.Errorf("%w: plot name is required", utils.ErrValidation)
	}
	if strings.TrimSpace(request.Crop) == "" {
		return 0, "", fmt.Errorf("%w: crop is required", utils.ErrValidation)
	}

	area, err := strconv.ParseFloat(strings.TrimSpace(request.Area), 64)
	if err != nil || area <= 0 {
		return 0, "", fmt.Errorf("%w: area must be a positive number", utils.ErrValidation)
	}

	status := db_models.PlotStatusPreparation
	if request.Status != "" {
		if !db_models.ValidPlotStatus(request.Status) {
			return 0, "", fmt.Errorf("%w: unknown plot status %q", utils.ErrValidation, request.Status)
		}
		status = db_models.PlotStatus(request.Status)
	}

	return area, status, nil
}

func toPlotResponse(plot *db_models.Plot) *response_models.PlotResponse {
	return &response_models.PlotResponse{
		ID:        plot.ID.String(),
		Name:      plot.Name,
		Crop:      plot.Crop,
		Area:      plot.Area,
		Location:  plot.Location,
		Status:    string(plot.Status),
		CreatedAt: plot.CreatedAt,
	}
}
