package db_models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is the one-to-one farm record behind an account. It does not
// exist until the first save; a profile counts as complete once the
// location field is filled in.
type Profile struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	DisplayName string
	FarmName    string
	Location    string
	FarmingType string
	LandSize    string
	PrimaryCrop string
	Preferences datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

func (p *Profile) IsComplete() bool {
	return strings.TrimSpace(p.Location) != ""
}
