package stor

import (
	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/hbnbdb"
	"github.com/pkg/errors"
)

// Open constructs the store selected by cfg and reloads it. The returned
// store is meant to be created once per process and handed to every
// consumer.
func Open(cfg hbnbdb.StorageConfig) (Stor, error) {
	switch cfg.Type {
	case hbnbdb.DBStorage:
		db, err := hbnbdb.ConnectToDB(cfg)
		if err != nil {
			return nil, err
		}

		if cfg.TestEnv {
			clog.Storage().Infof("test environment, dropping all tables")
			if err := hbnbdb.DropTables(db); err != nil {
				return nil, errors.Wrap(err, "dropping tables")
			}
		}

		s := NewGormStor(db)
		if err := s.Reload(); err != nil {
			_ = s.Close()
			return nil, err
		}

		clog.Storage().WithField("driver", cfg.Driver).Infof("using relational storage")
		return s, nil

	default:
		s := NewFileStor(cfg.FilePath)
		if err := s.Reload(); err != nil {
			return nil, err
		}

		clog.Storage().WithField("path", cfg.FilePath).Infof("using file storage")
		return s, nil
	}
}
