package config

import (
	"fmt"
	"staffeval/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func DSN(host, port, user, password, dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
}

// InitDB connects to postgres, makes sure the schema exists and auto migrates all models into it.
func InitDB(dsn string, schemaName string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   schemaName + ".",
			SingularTable: false,
		},
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	x := db.Exec(fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, schemaName))
	if x.Error != nil {
		return nil, x.Error
	}
	err = db.AutoMigrate(repository.Models()...)
	if err != nil {
		return nil, err
	}
	return db, nil
}
