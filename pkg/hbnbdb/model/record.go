package model

import (
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

// Record is the flat serialised form of an entity: field name to JSON
// primitive, plus the __class__ discriminator.
type Record map[string]any

// TimeFormat is ISO-8601 without a zone, microsecond precision. Timestamps
// are always UTC.
const TimeFormat = "2006-01-02T15:04:05.000000"

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// ParseTime accepts TimeFormat with or without the fractional part, and
// RFC 3339 text for records written by other tools.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		var rfcErr error
		if t, rfcErr = time.Parse(time.RFC3339Nano, s); rfcErr != nil {
			return time.Time{}, errors.Wrapf(err, "bad timestamp %q", s)
		}
	}

	return t.UTC(), nil
}

// ToRecord renders e into its record form.
func ToRecord(e Entity) Record {
	b := e.GetBase()
	rec := Record{
		FieldClass:     string(e.Kind()),
		FieldID:        b.ID,
		FieldCreatedAt: FormatTime(b.CreatedAt),
		FieldUpdatedAt: FormatTime(b.UpdatedAt),
	}

	for name, value := range e.fieldValues() {
		rec[name] = value
	}

	return rec
}

// FromRecord reconstructs the entity named by rec's __class__. An id or
// created_at missing from rec is generated, as for a fresh entity.
func FromRecord(rec Record) (Entity, error) {
	class, _ := rec[FieldClass].(string)
	kind, err := ParseKind(class)
	if err != nil {
		return nil, err
	}

	e, _ := Zero(kind)
	if err := Decode(e, rec); err != nil {
		return nil, err
	}

	b := e.GetBase()
	if b.ID == "" {
		b.ID = newID()
	}

	switch {
	case b.CreatedAt.IsZero():
		b.CreatedAt = now()
		b.UpdatedAt = b.CreatedAt
	case b.UpdatedAt.Before(b.CreatedAt):
		b.UpdatedAt = b.CreatedAt
	}

	return e, nil
}

// Decode applies the fields in rec onto e. Fields absent from rec are left
// untouched. Every key must name a field of e's kind; __class__ is ignored,
// but when present it must match e's kind.
func Decode(e Entity, rec Record) error {
	kind := e.Kind()
	values := make(map[string]any, len(rec))

	for name, value := range rec {
		if name == FieldClass {
			if class, _ := value.(string); class != string(kind) {
				return errors.Wrapf(ErrUnknownKind, "record for %v decoded into %s", value, kind)
			}
			continue
		}

		if _, ok := LookupField(kind, name); !ok {
			return errors.Wrapf(ErrUnknownField, "%s has no field %q", kind, name)
		}

		values[name] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  timestampHook,
		ErrorUnused: true,
		Squash:      true,
		TagName:     "json",
		Result:      e,
	})
	if err != nil {
		return err
	}

	return errors.Wrapf(decoder.Decode(values), "decoding %s", kind)
}

var timeType = reflect.TypeOf(time.Time{})

func timestampHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != timeType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return ParseTime(v)
	case time.Time:
		return v.UTC(), nil
	default:
		return data, nil
	}
}
