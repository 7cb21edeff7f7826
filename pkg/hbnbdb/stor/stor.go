package stor

import (
	"github.com/materials-commons/hbnb/pkg/hbnbdb/model"
	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("no instance found")

// Stor is the persistence contract shared by the file and relational
// backends.
//
// New stages an entity and Save makes every staged entity durable. Discard
// withdraws an unsaved change. Delete is immediate and durable in both
// backends. All with no kinds lists every kind; keys are always
// "<Kind>.<id>".
type Stor interface {
	All(kinds ...model.Kind) (map[string]model.Entity, error)
	Get(kind model.Kind, id string) (model.Entity, error)
	Count(kinds ...model.Kind) (int, error)
	New(e model.Entity) error
	Save() error
	Delete(e model.Entity) error
	Discard(e model.Entity)
	Reload() error
	Close() error
}

// SaveEntity stamps e's updated time, stages it and saves the store. When
// the save fails e is discarded, so the store does not keep offering a
// change that never reached storage.
func SaveEntity(s Stor, e model.Entity) error {
	e.GetBase().Touch()
	if err := s.New(e); err != nil {
		return err
	}

	if err := s.Save(); err != nil {
		s.Discard(e)
		return err
	}

	return nil
}

func kindsOrAll(kinds []model.Kind) []model.Kind {
	if len(kinds) == 0 {
		return model.AllKinds
	}

	return kinds
}

func notFound(kind model.Kind, id string) error {
	return errors.Wrapf(ErrNotFound, "%s", model.KeyFor(kind, id))
}
