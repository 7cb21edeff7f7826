package model

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

type FieldType int

const (
	StringField FieldType = iota
	IntField
	FloatField
	StringListField
)

func (t FieldType) String() string {
	switch t {
	case IntField:
		return "integer"
	case FloatField:
		return "float"
	case StringListField:
		return "string list"
	default:
		return "string"
	}
}

type Field struct {
	Name string
	Type FieldType
}

const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
	FieldClass     = "__class__"
)

var ErrUnknownField = errors.New("unknown field")

var baseFields = []Field{
	{Name: FieldID, Type: StringField},
	{Name: FieldCreatedAt, Type: StringField},
	{Name: FieldUpdatedAt, Type: StringField},
}

var kindFields = map[Kind][]Field{
	KindUser: {
		{Name: "email", Type: StringField},
		{Name: "password", Type: StringField},
		{Name: "first_name", Type: StringField},
		{Name: "last_name", Type: StringField},
	},
	KindState: {
		{Name: "name", Type: StringField},
	},
	KindCity: {
		{Name: "state_id", Type: StringField},
		{Name: "name", Type: StringField},
	},
	KindPlace: {
		{Name: "city_id", Type: StringField},
		{Name: "user_id", Type: StringField},
		{Name: "name", Type: StringField},
		{Name: "description", Type: StringField},
		{Name: "number_rooms", Type: IntField},
		{Name: "number_bathrooms", Type: IntField},
		{Name: "max_guest", Type: IntField},
		{Name: "price_by_night", Type: IntField},
		{Name: "latitude", Type: FloatField},
		{Name: "longitude", Type: FloatField},
		{Name: "amenity_ids", Type: StringListField},
	},
	KindReview: {
		{Name: "place_id", Type: StringField},
		{Name: "user_id", Type: StringField},
		{Name: "text", Type: StringField},
	},
	KindAmenity: {
		{Name: "name", Type: StringField},
	},
}

// FieldsOf returns the fields kind adds on top of id and the timestamps, in
// display order.
func FieldsOf(kind Kind) []Field {
	return kindFields[kind]
}

// LookupField finds name among the fields of kind, including the base fields.
func LookupField(kind Kind, name string) (Field, bool) {
	for _, f := range baseFields {
		if f.Name == name {
			return f, true
		}
	}

	for _, f := range kindFields[kind] {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// IsBaseField reports whether name is one of id, created_at or updated_at.
func IsBaseField(name string) bool {
	return name == FieldID || name == FieldCreatedAt || name == FieldUpdatedAt
}

// ParseFieldValue converts text arriving from outside (the console) into the
// semantic type of the named field.
func ParseFieldValue(kind Kind, name, text string) (any, error) {
	f, ok := LookupField(kind, name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownField, "%s has no field %q", kind, name)
	}

	switch f.Type {
	case IntField:
		// Decimal only: "010" is ten and "0x10" is not a number.
		v, err := strconv.Atoi(strings.TrimSpace(text))
		return v, errors.Wrapf(err, "%s.%s expects an integer", kind, name)
	case FloatField:
		v, err := cast.ToFloat64E(strings.TrimSpace(text))
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errors.Errorf("%q is not a finite number", text)
		}
		return v, errors.Wrapf(err, "%s.%s expects a float", kind, name)
	case StringListField:
		var items []string
		for _, item := range strings.Split(text, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		return items, nil
	default:
		return text, nil
	}
}
