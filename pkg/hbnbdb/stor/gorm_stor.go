package stor

import (
	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/hbnbdb"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormStor implements Stor on a relational database. Entities passed to New
// are held in a pending unit of work; Save writes all of them in a single
// transaction. Reads only see committed rows.
type GormStor struct {
	db      *gorm.DB
	pending map[string]model.Entity
	order   []string
}

func NewGormStor(db *gorm.DB) *GormStor {
	return &GormStor{
		db:      db,
		pending: make(map[string]model.Entity),
	}
}

func (s *GormStor) DB() *gorm.DB {
	return s.db
}

// Reload creates any missing tables and discards pending changes.
func (s *GormStor) Reload() error {
	s.resetPending()
	return errors.Wrap(hbnbdb.RunMigrations(s.db), "migrating schema")
}

func (s *GormStor) All(kinds ...model.Kind) (map[string]model.Entity, error) {
	result := make(map[string]model.Entity)
	for _, kind := range kindsOrAll(kinds) {
		entities, err := findAll(s.db, kind)
		if err != nil {
			return nil, errors.Wrapf(err, "listing %s", kind)
		}

		for _, e := range entities {
			result[model.Key(e)] = e
		}
	}

	return result, nil
}

func (s *GormStor) Get(kind model.Kind, id string) (model.Entity, error) {
	e, err := model.Zero(kind)
	if err != nil {
		return nil, err
	}

	err = s.db.Where("id = ?", id).First(e).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, notFound(kind, id)
	case err != nil:
		return nil, errors.Wrapf(err, "loading %s", model.KeyFor(kind, id))
	default:
		return e, nil
	}
}

func (s *GormStor) Count(kinds ...model.Kind) (int, error) {
	var total int64
	for _, kind := range kindsOrAll(kinds) {
		e, err := model.Zero(kind)
		if err != nil {
			return 0, err
		}

		var n int64
		if err := s.db.Model(e).Count(&n).Error; err != nil {
			return 0, errors.Wrapf(err, "counting %s", kind)
		}
		total += n
	}

	return int(total), nil
}

// New stages e for insert or update at the next Save.
func (s *GormStor) New(e model.Entity) error {
	if e == nil {
		return errors.New("cannot store a nil entity")
	}

	key := model.Key(e)
	if _, ok := s.pending[key]; !ok {
		s.order = append(s.order, key)
	}
	s.pending[key] = e

	return nil
}

// Save commits every staged entity in one transaction. On failure nothing
// is written and the staged entities are dropped, so one bad entity does
// not fail every later Save.
func (s *GormStor) Save() error {
	if len(s.order) == 0 {
		return nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range s.order {
			if err := tx.Save(s.pending[key]).Error; err != nil {
				return errors.Wrapf(err, "saving %s", key)
			}
		}
		return nil
	})

	if err != nil {
		clog.Storage().Warnf("dropping %d staged entities: %s", len(s.order), err)
		s.resetPending()
		return err
	}

	clog.Storage().Debugf("committed %d entities", len(s.order))
	s.resetPending()
	return nil
}

// Delete removes e's row straight away and drops any staged write for it,
// matching the file backend where a delete is persisted immediately.
func (s *GormStor) Delete(e model.Entity) error {
	if e == nil {
		return nil
	}

	key := model.Key(e)
	s.unstage(key)

	if e.GetBase().ID == "" {
		return nil
	}

	return errors.Wrapf(s.db.Delete(e).Error, "deleting %s", key)
}

// Discard drops any staged write for e. Committed rows are untouched.
func (s *GormStor) Discard(e model.Entity) {
	if e != nil {
		s.unstage(model.Key(e))
	}
}

func (s *GormStor) unstage(key string) {
	if _, ok := s.pending[key]; !ok {
		return
	}

	delete(s.pending, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Close discards pending changes and closes the connection pool.
func (s *GormStor) Close() error {
	s.resetPending()

	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func (s *GormStor) resetPending() {
	s.pending = make(map[string]model.Entity)
	s.order = nil
}

func findAll(db *gorm.DB, kind model.Kind) ([]model.Entity, error) {
	switch kind {
	case model.KindUser:
		return find[model.User](db)
	case model.KindState:
		return find[model.State](db)
	case model.KindCity:
		return find[model.City](db)
	case model.KindPlace:
		return find[model.Place](db)
	case model.KindReview:
		return find[model.Review](db)
	case model.KindAmenity:
		return find[model.Amenity](db)
	default:
		return nil, errors.Wrapf(model.ErrUnknownKind, "%q", string(kind))
	}
}

func find[T any, PT interface {
	*T
	model.Entity
}](db *gorm.DB) ([]model.Entity, error) {
	var rows []T
	if err := db.Find(&rows).Error; err != nil {
		return nil, err
	}

	entities := make([]model.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, PT(&rows[i]))
	}

	return entities, nil
}
