package hbnbdb

import (
	"path/filepath"
	"testing"

	"github.com/materials-commons/hbnb/pkg/config"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestLoadStorageConfigDefaultsToFile(t *testing.T) {
	cfg, err := LoadStorageConfig(config.NewMapConfig(nil))
	require.NoError(t, err)
	require.Equal(t, FileStorage, cfg.Type)
	require.Equal(t, DefaultFilePath, cfg.FilePath)
	require.False(t, cfg.TestEnv)
}

func TestLoadStorageConfigExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	cfg, err := LoadStorageConfig(config.NewMapConfig(map[string]string{KeyFilePath: "~/hbnb/file.json"}))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "hbnb", "file.json"), cfg.FilePath)
}

func TestLoadStorageConfigForMySQL(t *testing.T) {
	cfg, err := LoadStorageConfig(config.NewMapConfig(map[string]string{
		KeyStorageType: "db",
		KeyMySQLUser:   "hbnb_dev",
		KeyMySQLPwd:    "hbnb_dev_pwd",
		KeyMySQLHost:   "db",
		KeyMySQLDB:     "hbnb_dev_db",
		KeyEnv:         "test",
	}))
	require.NoError(t, err)
	require.Equal(t, DBStorage, cfg.Type)
	require.Equal(t, DriverMySQL, cfg.Driver)
	require.True(t, cfg.TestEnv)
	require.Equal(t, "hbnb_dev:hbnb_dev_pwd@tcp(db:3306)/hbnb_dev_db?charset=utf8mb4&parseTime=True&loc=UTC", cfg.MySQLDSN())
}

func TestLoadStorageConfigErrors(t *testing.T) {
	var tests = []struct {
		name    string
		entries map[string]string
	}{
		{name: "mysql without database", entries: map[string]string{KeyStorageType: "db"}},
		{name: "unknown driver", entries: map[string]string{KeyStorageType: "db", KeyDBDriver: "oracle"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadStorageConfig(config.NewMapConfig(test.entries))
			require.Error(t, err)
		})
	}
}

func TestSqliteDriverDefaultsToInMemory(t *testing.T) {
	cfg, err := LoadStorageConfig(config.NewMapConfig(map[string]string{
		KeyStorageType: "db",
		KeyDBDriver:    "sqlite",
	}))
	require.NoError(t, err)
	require.Equal(t, SqliteInMemoryDSN, cfg.SQLitePath)
}
