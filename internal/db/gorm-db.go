package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectGORM(databaseName string) (*gorm.DB, error) {

	databaseUrl := os.Getenv(fmt.Sprintf("database_sqlx_url_%s", databaseName))
	if databaseUrl == `` {
		return nil, fmt.Errorf("not found database_sqlx_url_%s", databaseName)
	}

	gormDB, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	return gormDB, nil
}

func CloseGORM(gormDB *gorm.DB) {
	if gormDB == nil {
		return
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
