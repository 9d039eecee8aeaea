package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-match-service.com/task-match-service/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Task{},
		&model.User{},
		&model.Property{},
		&model.TaskProperty{},
		&model.UserProperty{},
		&model.UserBehavior{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
