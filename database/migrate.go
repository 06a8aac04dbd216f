package database

import (
	"vitaverse/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func MigrateDatabase(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.ContractEvent{},
		&models.IndexerCursor{},
		&models.HealthSubmission{},
		&models.BadgePurchase{},
	)
	if err != nil {
		logrus.WithError(err).Error("Error during migration")
		return err
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}
