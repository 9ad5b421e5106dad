package db

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectGORM(databaseName string) (*gorm.DB, error) {

	dabaseUrl := os.Getenv(fmt.Sprintf("database_gorm_url_%s", databaseName))
	if dabaseUrl == `` {
		return nil, fmt.Errorf("not found database_gorm_url_%s", databaseName)
	}

	gormDb, err := gorm.Open(mysql.Open(dabaseUrl), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	return gormDb, nil
}

func CloseGORM(gormDb *gorm.DB) error {
	sqlDb, err := gormDb.DB()
	if err != nil {
		return err
	}

	return sqlDb.Close()
}
