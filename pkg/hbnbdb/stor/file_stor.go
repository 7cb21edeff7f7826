package stor

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/materials-commons/hbnb/pkg/clog"
	"github.com/materials-commons/hbnb/pkg/hbnbdb/model"
	"github.com/pkg/errors"
)

// FileStor keeps every entity in memory and serialises the whole set to a
// single JSON document:
//
//	{"<Kind>.<id>": {...fields..., "__class__": "<Kind>"}, ...}
//
// It does no locking. It is meant for a single console or request thread.
type FileStor struct {
	path    string
	objects map[string]model.Entity

	// saved holds the records last written to or read from the document.
	saved map[string]model.Record
}

func NewFileStor(path string) *FileStor {
	return &FileStor{
		path:    path,
		objects: make(map[string]model.Entity),
		saved:   make(map[string]model.Record),
	}
}

func (s *FileStor) Path() string {
	return s.path
}

// All returns a copy of the held entities, filtered to kinds when given.
func (s *FileStor) All(kinds ...model.Kind) (map[string]model.Entity, error) {
	wanted := make(map[model.Kind]bool)
	for _, kind := range kindsOrAll(kinds) {
		wanted[kind] = true
	}

	result := make(map[string]model.Entity)
	for key, e := range s.objects {
		if wanted[e.Kind()] {
			result[key] = e
		}
	}

	return result, nil
}

func (s *FileStor) Get(kind model.Kind, id string) (model.Entity, error) {
	e, ok := s.objects[model.KeyFor(kind, id)]
	if !ok {
		return nil, notFound(kind, id)
	}

	return e, nil
}

func (s *FileStor) Count(kinds ...model.Kind) (int, error) {
	all, err := s.All(kinds...)
	return len(all), err
}

// New adds or replaces e. Nothing is written until Save. An entity that
// can't be encoded into the document is refused, so it can't block later
// saves.
func (s *FileStor) New(e model.Entity) error {
	if e == nil {
		return errors.New("cannot store a nil entity")
	}

	key := model.Key(e)
	if _, err := json.Marshal(model.ToRecord(e)); err != nil {
		return errors.Wrapf(err, "encoding %s", key)
	}

	s.objects[key] = e
	return nil
}

// Discard puts e's key back to what the document last held: the saved
// version if there is one, otherwise nothing.
func (s *FileStor) Discard(e model.Entity) {
	if e == nil {
		return
	}

	key := model.Key(e)
	rec, ok := s.saved[key]
	if !ok {
		delete(s.objects, key)
		return
	}

	restored, err := model.FromRecord(rec)
	if err != nil {
		clog.Storage().WithField("key", key).Warnf("dropping unrestorable entity: %s", err)
		delete(s.objects, key)
		return
	}

	s.objects[key] = restored
}

// Save writes every held entity to the document. The document is written to
// a temporary file in the same directory and renamed over the old one, so a
// reader sees either the previous or the new content.
func (s *FileStor) Save() error {
	records := make(map[string]model.Record, len(s.objects))
	for key, e := range s.objects {
		records[key] = model.ToRecord(e)
	}

	b, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encoding store")
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "writing %s", tmp.Name())
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "closing %s", tmp.Name())
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "replacing %s", s.path)
	}

	s.saved = records
	clog.Storage().WithField("path", s.path).Debugf("saved %d entities", len(records))
	return nil
}

// Reload reads the document and adds every record in it, replacing held
// entities with the same key. A missing or unparsable document leaves the
// store as it was. Records that can't be decoded are skipped.
func (s *FileStor) Reload() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		clog.Storage().WithField("path", s.path).Debugf("no store document loaded: %s", err)
		return nil
	}

	var records map[string]model.Record
	if err := json.Unmarshal(b, &records); err != nil {
		clog.Storage().WithField("path", s.path).Warnf("ignoring unparsable store document: %s", err)
		return nil
	}

	for key, rec := range records {
		e, err := model.FromRecord(rec)
		if err != nil {
			clog.Storage().WithField("key", key).Warnf("skipping record: %s", err)
			continue
		}

		if model.Key(e) != key {
			clog.Storage().WithField("key", key).Warnf("record stored as %s", model.Key(e))
		}

		s.objects[model.Key(e)] = e
		s.saved[model.Key(e)] = model.ToRecord(e)
	}

	return nil
}

// Delete removes e and saves the store. Deleting an entity that isn't held
// does nothing.
func (s *FileStor) Delete(e model.Entity) error {
	if e == nil {
		return nil
	}

	key := model.Key(e)
	if _, ok := s.objects[key]; !ok {
		return nil
	}

	delete(s.objects, key)
	return s.Save()
}

// Close re-reads the document, picking up changes written by another
// process since the last Reload.
func (s *FileStor) Close() error {
	return s.Reload()
}
