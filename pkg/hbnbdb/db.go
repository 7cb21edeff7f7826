package hbnbdb

import (
	"fmt"

	"github.com/materials-commons/hbnb/pkg/hbnbdb/model"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const SqliteInMemoryDSN = "file::memory:?cache=shared"

func (c StorageConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// ConnectToDB opens the configured relational database. There is no retry:
// a database that can't be reached at start up is a fatal error for the
// caller to report.
func ConnectToDB(c StorageConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	switch c.Driver {
	case DriverSQLite:
		db, err := gorm.Open(sqlite.Open(c.SQLitePath), gormConfig)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open sqlite db %s", c.SQLitePath)
		}

		// A single connection avoids sqlite table lock errors, and keeps an
		// in memory database alive for the life of the pool.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)

		return db, nil

	default:
		db, err := gorm.Open(mysql.Open(c.MySQLDSN()), gormConfig)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open mysql db %s@%s:%d/%s", c.User, c.Host, c.Port, c.Database)
		}

		return db, nil
	}
}

// Models lists the gorm model for each entity kind.
func Models() []any {
	return []any{
		&model.State{},
		&model.City{},
		&model.User{},
		&model.Place{},
		&model.Review{},
		&model.Amenity{},
	}
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

func DropTables(db *gorm.DB) error {
	return db.Migrator().DropTable(Models()...)
}
