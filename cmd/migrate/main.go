package main

import (
	"github.com/suritel/worklog-api/internal/config"
	"github.com/suritel/worklog-api/internal/database"
	"github.com/suritel/worklog-api/internal/env"
	"github.com/suritel/worklog-api/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(
		&model.Department{},
		&model.User{},
		&model.Client{},
		&model.Project{},
		&model.ManagerContact{},
		&model.Product{},
		&model.Incident{},
		&model.WorkLog{},
		&model.FileUpload{},
	)
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}

	logger.Info("Migration complete")
}
