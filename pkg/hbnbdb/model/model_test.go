package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewAssignsIdentityAndEqualTimestamps(t *testing.T) {
	seen := make(map[string]bool)
	for _, kind := range AllKinds {
		e, err := New(kind)
		require.NoErrorf(t, err, "New(%s) failed: %s", kind, err)

		b := e.GetBase()
		require.NotEmpty(t, b.ID)
		require.Falsef(t, seen[b.ID], "id %s reused", b.ID)
		seen[b.ID] = true
		require.Equal(t, b.CreatedAt, b.UpdatedAt)
		require.Equal(t, kind, e.Kind())
	}
}

func TestTouchStrictlyIncreasesUpdatedAt(t *testing.T) {
	s := NewState()
	created := s.CreatedAt

	for i := 0; i < 100; i++ {
		before := s.UpdatedAt
		s.Touch()
		require.True(t, s.UpdatedAt.After(before))
	}

	require.Equal(t, created, s.CreatedAt)
	require.True(t, s.CreatedAt.Before(s.UpdatedAt))
}

func TestRecordRoundTrip(t *testing.T) {
	p := NewPlace()
	p.CityID = "0001"
	p.UserID = "0002"
	p.Name = "My little house"
	p.NumberRooms = 4
	p.Latitude = 37.773972
	p.Longitude = -122.431297
	p.AmenityIDs = []string{"a1", "a2"}

	rec := ToRecord(p)
	require.Equal(t, "Place", rec[FieldClass])
	require.Equal(t, FormatTime(p.CreatedAt), rec[FieldCreatedAt])

	e, err := FromRecord(rec)
	require.NoError(t, err)
	require.Equal(t, p, e)
}

func TestRecordRoundTripThroughJSON(t *testing.T) {
	u := NewUser()
	u.Email = "betty@example.com"
	u.FirstName = "Betty"

	b, err := json.Marshal(ToRecord(u))
	require.NoError(t, err)

	var rec Record
	require.NoError(t, json.Unmarshal(b, &rec))

	e, err := FromRecord(rec)
	require.NoError(t, err)

	got, ok := e.(*User)
	require.True(t, ok, "expected *User got %T", e)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Email, got.Email)
	require.True(t, u.CreatedAt.Equal(got.CreatedAt))
	require.True(t, u.UpdatedAt.Equal(got.UpdatedAt))
}

func TestFromRecordCoercesJSONNumbers(t *testing.T) {
	var rec Record
	doc := `{"__class__": "Place", "id": "p1", "created_at": "2017-09-28T21:03:54.052298",
		"updated_at": "2017-09-28T21:03:54", "number_rooms": 3, "latitude": 1.5, "amenity_ids": ["x"]}`
	require.NoError(t, json.Unmarshal([]byte(doc), &rec))

	e, err := FromRecord(rec)
	require.NoError(t, err)

	p := e.(*Place)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, 3, p.NumberRooms)
	require.Equal(t, 1.5, p.Latitude)
	require.Equal(t, []string{"x"}, p.AmenityIDs)
	require.Equal(t, 52298000, p.CreatedAt.Nanosecond())
	require.Equal(t, time.Date(2017, 9, 28, 21, 3, 54, 0, time.UTC), p.UpdatedAt)
}

func TestFromRecordFillsMissingIdentity(t *testing.T) {
	e, err := FromRecord(Record{FieldClass: "State", "name": "Nevada"})
	require.NoError(t, err)

	b := e.GetBase()
	require.NotEmpty(t, b.ID)
	require.False(t, b.CreatedAt.IsZero())
	require.Equal(t, b.CreatedAt, b.UpdatedAt)
}

func TestFromRecordClampsUpdatedAtToCreatedAt(t *testing.T) {
	e, err := FromRecord(Record{
		FieldClass:     "State",
		FieldID:        "s1",
		FieldCreatedAt: "2017-06-14T22:31:03.285259",
		FieldUpdatedAt: "2017-06-01T08:00:00.000000",
	})
	require.NoError(t, err)

	b := e.GetBase()
	require.Equal(t, "2017-06-14T22:31:03.285259", FormatTime(b.CreatedAt))
	require.Equal(t, b.CreatedAt, b.UpdatedAt)
}

func TestFromRecordRejectsBadInput(t *testing.T) {
	var tests = []struct {
		name string
		rec  Record
		want error
	}{
		{name: "missing class", rec: Record{"name": "x"}, want: ErrUnknownKind},
		{name: "unknown class", rec: Record{FieldClass: "BaseModel"}, want: ErrUnknownKind},
		{name: "empty key", rec: Record{FieldClass: "State", "": "x"}, want: ErrUnknownField},
		{name: "field of another kind", rec: Record{FieldClass: "State", "state_id": "x"}, want: ErrUnknownField},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := FromRecord(test.rec)
			require.Error(t, err)
			require.Truef(t, errors.Is(err, test.want), "expected %s, got %s", test.want, err)
		})
	}

	_, err := FromRecord(Record{FieldClass: "Place", "number_rooms": "four"})
	require.Error(t, err)

	_, err = FromRecord(Record{FieldClass: "State", FieldCreatedAt: "yesterday"})
	require.Error(t, err)
}

func TestDecodeUpdatesOnlyGivenFields(t *testing.T) {
	c := NewCity()
	c.Name = "Reno"
	c.StateID = "s1"

	require.NoError(t, Decode(c, Record{"name": "Sparks"}))
	require.Equal(t, "Sparks", c.Name)
	require.Equal(t, "s1", c.StateID)

	err := Decode(c, Record{FieldClass: "State", "name": "x"})
	require.True(t, errors.Is(err, ErrUnknownKind))
}

func TestStringRepresentation(t *testing.T) {
	s := NewState()
	s.Name = "California"
	require.Contains(t, s.String(), "[State] ("+s.ID+") {")
	require.Contains(t, s.String(), "'name': 'California'")
	require.Contains(t, s.String(), "'id': '"+s.ID+"'")

	p := NewPlace()
	p.NumberRooms = 4
	p.Latitude = 37.773972
	p.Longitude = -122.431297
	out := p.String()
	require.Contains(t, out, "'number_rooms': 4,")
	require.Contains(t, out, "'latitude': 37.773972")
	require.Contains(t, out, "'longitude': -122.431297")
	require.Contains(t, out, "'max_guest': 0,")
	require.Contains(t, out, "'amenity_ids': []")
}

func TestFormatFloat(t *testing.T) {
	var tests = []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0.0"},
		{in: 4, want: "4.0"},
		{in: 37.773972, want: "37.773972"},
		{in: -122.431297, want: "-122.431297"},
		{in: 1e20, want: "1e+20"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			require.Equal(t, test.want, formatFloat(test.in))
		})
	}
}

func TestParseFieldValue(t *testing.T) {
	v, err := ParseFieldValue(KindPlace, "number_rooms", "4")
	require.NoError(t, err)
	require.Equal(t, 4, v)

	v, err = ParseFieldValue(KindPlace, "latitude", "37.773972")
	require.NoError(t, err)
	require.Equal(t, 37.773972, v)

	v, err = ParseFieldValue(KindPlace, "name", "4")
	require.NoError(t, err)
	require.Equal(t, "4", v)

	v, err = ParseFieldValue(KindPlace, "amenity_ids", "a, b,")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, v)

	v, err = ParseFieldValue(KindPlace, "number_rooms", " 010 ")
	require.NoError(t, err)
	require.Equal(t, 10, v)

	v, err = ParseFieldValue(KindPlace, "max_guest", "-3")
	require.NoError(t, err)
	require.Equal(t, -3, v)

	for _, text := range []string{"many", "0x10", "0b11", "4.5", ""} {
		_, err = ParseFieldValue(KindPlace, "number_rooms", text)
		require.Errorf(t, err, "%q should not parse as an integer", text)
	}

	for _, text := range []string{"nan", "NaN", "inf", "-Inf", "+infinity", "1e400"} {
		_, err = ParseFieldValue(KindPlace, "latitude", text)
		require.Errorf(t, err, "%q should not parse as a float", text)
	}

	_, err = ParseFieldValue(KindState, "population", "1")
	require.True(t, errors.Is(err, ErrUnknownField))
}

func TestParseKind(t *testing.T) {
	for _, kind := range AllKinds {
		k, err := ParseKind(string(kind))
		require.NoError(t, err)
		require.Equal(t, kind, k)
	}

	_, err := ParseKind("MyModel")
	require.True(t, errors.Is(err, ErrUnknownKind))
}

func TestKeys(t *testing.T) {
	a := NewAmenity()
	require.Equal(t, "Amenity."+a.ID, Key(a))
	require.Equal(t, "City.abc", KeyFor(KindCity, "abc"))
}
