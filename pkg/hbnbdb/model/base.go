package model

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-uuid"
)

// Entity is implemented by the six variants only. The unexported method
// keeps the set closed to this package.
type Entity interface {
	Kind() Kind
	GetBase() *Base
	String() string
	fieldValues() map[string]any
}

// Base carries the identity and timestamps shared by every variant.
type Base struct {
	ID        string    `json:"id" gorm:"column:id;primaryKey;size:60"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null;precision:6;autoCreateTime:false"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null;precision:6;autoUpdateTime:false"`
}

func (b *Base) GetBase() *Base {
	return b
}

// Touch stamps UpdatedAt with the current time. The new value is always
// strictly after the previous one, even when the clock has not advanced past
// the microsecond precision timestamps are kept at.
func (b *Base) Touch() {
	t := now()
	if !t.After(b.UpdatedAt) {
		t = b.UpdatedAt.Add(time.Microsecond)
	}
	b.UpdatedAt = t
}

func newBase() Base {
	t := now()
	return Base{ID: newID(), CreatedAt: t, UpdatedAt: t}
}

func newID() string {
	id, err := uuid.GenerateUUID()
	if err != nil {
		// Only fails when crypto/rand can't be read.
		panic(fmt.Sprintf("unable to generate id: %s", err))
	}

	return id
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Key returns the storage key "<Kind>.<id>" for e.
func Key(e Entity) string {
	return KeyFor(e.Kind(), e.GetBase().ID)
}

func KeyFor(kind Kind, id string) string {
	return string(kind) + "." + id
}
