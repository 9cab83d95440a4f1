package repository

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDBConnection opens the Postgres connection and migrates the schema.
// TranslateError is enabled so duplicate-key violations surface as
// gorm.ErrDuplicatedKey and can be mapped to the domain taxonomy.
func NewDBConnection(databaseUrl string) (*gorm.DB, error) {
	if databaseUrl == "" {
		return nil, errors.New("database url is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseUrl), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Account{}, &Transaction{}); err != nil {
		return nil, err
	}
	return db, nil
}
