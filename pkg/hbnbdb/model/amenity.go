package model

type Amenity struct {
	Base
	Name string `json:"name" gorm:"column:name;size:128;not null"`
}

func NewAmenity() *Amenity {
	return &Amenity{Base: newBase()}
}

func (Amenity) TableName() string { return "amenities" }

func (*Amenity) Kind() Kind { return KindAmenity }

func (a *Amenity) String() string { return describe(a) }

func (a *Amenity) fieldValues() map[string]any {
	return map[string]any{"name": a.Name}
}
