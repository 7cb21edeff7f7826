package hbnbdb

import (
	"strings"

	"github.com/materials-commons/hbnb/pkg/config"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	KeyStorageType = "HBNB_TYPE_STORAGE"
	KeyMySQLUser   = "HBNB_MYSQL_USER"
	KeyMySQLPwd    = "HBNB_MYSQL_PWD"
	KeyMySQLHost   = "HBNB_MYSQL_HOST"
	KeyMySQLPort   = "HBNB_MYSQL_PORT"
	KeyMySQLDB     = "HBNB_MYSQL_DB"
	KeyEnv         = "HBNB_ENV"
	KeyDBDriver    = "HBNB_DB_DRIVER"
	KeySQLitePath  = "HBNB_SQLITE_PATH"
	KeyFilePath    = "HBNB_FILE_PATH"
)

type StorageType string

const (
	FileStorage StorageType = "file"
	DBStorage   StorageType = "db"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

const (
	DefaultFilePath  = "file.json"
	DefaultMySQLPort = 3306
)

// StorageConfig is everything the store selector needs to construct a
// backend. It is read once at start up.
type StorageConfig struct {
	Type StorageType

	// File backend.
	FilePath string

	// Relational backend.
	Driver     string
	User       string
	Password   string
	Host       string
	Port       int
	Database   string
	SQLitePath string

	// TestEnv drops every table before the schema is (re)created.
	TestEnv bool
}

// LoadStorageConfig reads a StorageConfig from c. HBNB_TYPE_STORAGE=db
// selects the relational backend, anything else the file backend.
func LoadStorageConfig(c config.Configer) (StorageConfig, error) {
	cfg := StorageConfig{
		Type:       FileStorage,
		Driver:     strings.ToLower(c.GetKeyWithDefault(KeyDBDriver, DriverMySQL)),
		User:       c.GetKey(KeyMySQLUser),
		Password:   c.GetKey(KeyMySQLPwd),
		Host:       c.GetKeyWithDefault(KeyMySQLHost, "localhost"),
		Port:       c.GetIntKeyWithDefault(KeyMySQLPort, DefaultMySQLPort),
		Database:   c.GetKey(KeyMySQLDB),
		SQLitePath: c.GetKey(KeySQLitePath),
		TestEnv:    c.GetKey(KeyEnv) == "test",
	}

	if strings.ToLower(c.GetKey(KeyStorageType)) == string(DBStorage) {
		cfg.Type = DBStorage
	}

	filePath, err := homedir.Expand(c.GetKeyWithDefault(KeyFilePath, DefaultFilePath))
	if err != nil {
		return cfg, errors.Wrapf(err, "expanding %s", KeyFilePath)
	}
	cfg.FilePath = filePath

	if cfg.Type == DBStorage {
		switch cfg.Driver {
		case DriverMySQL:
			if cfg.Database == "" {
				return cfg, errors.Errorf("%s must be set for the mysql driver", KeyMySQLDB)
			}
		case DriverSQLite:
			if cfg.SQLitePath == "" {
				cfg.SQLitePath = SqliteInMemoryDSN
			}
		default:
			return cfg, errors.Errorf("unknown %s %q", KeyDBDriver, cfg.Driver)
		}
	}

	return cfg, nil
}
