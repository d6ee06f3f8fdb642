package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kissan/internal/config"
	"kissan/internal/models/db_models"
)

func InitPostgresql(cfg config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Profile{},
		&db_models.Plot{},
		&db_models.Scheme{},
	); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	seedSchemes(connectionPool)

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// seedSchemes loads the scheme catalogue once; existing rows are left alone.
func seedSchemes(db *gorm.DB) {
	var count int64
	if err := db.Model(&db_models.Scheme{}).Count(&count).Error; err != nil {
		log.Printf("Error counting schemes: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if err := db.Create(db_models.SchemeCatalogue()).Error; err != nil {
		log.Printf("Error seeding schemes: %v", err)
	}
}
