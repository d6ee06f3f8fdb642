package db_models

import "github.com/lib/pq"

// Scheme is a government support programme entry. The catalogue is seeded
// at startup and read-only afterwards.
type Scheme struct {
	BaseModel
	Code        int    `gorm:"uniqueIndex"`
	Title       string
	Description string
	Category    string
	Deadline    string
	Status      string
	Link        string
	Tags        pq.StringArray `gorm:"type:text[]"`
}
