package postgres

import (
	"log"

	"github.com/LavaJover/shvark-requisites-service/internal/config"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-requisites-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RequisitesConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.RequisitesDB.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if cfg.RequisitesDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RequisitesDB.MigrationsPath); err != nil {
			log.Fatalf("failed to apply migrations: %v\n", err)
		}
		return db
	}

	if err := db.AutoMigrate(&models.LocalSlotModel{}); err != nil {
		log.Fatalf("failed to automigrate: %v\n", err)
	}
	return db
}
