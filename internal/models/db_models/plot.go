package db_models

import "github.com/google/uuid"

type PlotStatus string

const (
	PlotStatusPreparation PlotStatus = "Preparation"
	PlotStatusActive      PlotStatus = "Active"
	PlotStatusHarvested   PlotStatus = "Harvested"
)

func ValidPlotStatus(s string) bool {
	switch PlotStatus(s) {
	case PlotStatusPreparation, PlotStatusActive, PlotStatusHarvested:
		return true
	}
	return false
}

// Plot is a single farm parcel owned by an account. Area is in acres.
type Plot struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	Crop      string
	Area      float64
	Location  string
	Status    PlotStatus `gorm:"default:Preparation"`
}
