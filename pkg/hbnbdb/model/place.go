package model

import "slices"

type Place struct {
	Base
	CityID          string   `json:"city_id" gorm:"column:city_id;size:60;not null;index"`
	UserID          string   `json:"user_id" gorm:"column:user_id;size:60;not null;index"`
	Name            string   `json:"name" gorm:"column:name;size:128;not null"`
	Description     string   `json:"description" gorm:"column:description;size:1024"`
	NumberRooms     int      `json:"number_rooms" gorm:"column:number_rooms;not null;default:0"`
	NumberBathrooms int      `json:"number_bathrooms" gorm:"column:number_bathrooms;not null;default:0"`
	MaxGuest        int      `json:"max_guest" gorm:"column:max_guest;not null;default:0"`
	PriceByNight    int      `json:"price_by_night" gorm:"column:price_by_night;not null;default:0"`
	Latitude        float64  `json:"latitude" gorm:"column:latitude"`
	Longitude       float64  `json:"longitude" gorm:"column:longitude"`
	AmenityIDs      []string `json:"amenity_ids" gorm:"column:amenity_ids;type:text;serializer:json"`
}

func NewPlace() *Place {
	return &Place{Base: newBase()}
}

func (Place) TableName() string { return "places" }

func (*Place) Kind() Kind { return KindPlace }

func (p *Place) String() string { return describe(p) }

func (p *Place) fieldValues() map[string]any {
	amenityIDs := p.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []string{}
	}

	return map[string]any{
		"city_id":          p.CityID,
		"user_id":          p.UserID,
		"name":             p.Name,
		"description":      p.Description,
		"number_rooms":     p.NumberRooms,
		"number_bathrooms": p.NumberBathrooms,
		"max_guest":        p.MaxGuest,
		"price_by_night":   p.PriceByNight,
		"latitude":         p.Latitude,
		"longitude":        p.Longitude,
		"amenity_ids":      amenityIDs,
	}
}

func (p *Place) Reviews(l Lister) ([]*Review, error) {
	return related(l, KindReview, func(r *Review) bool { return r.PlaceID == p.ID })
}

// Amenities are the stored amenities listed in p's amenity_ids.
func (p *Place) Amenities(l Lister) ([]*Amenity, error) {
	return related(l, KindAmenity, func(a *Amenity) bool { return slices.Contains(p.AmenityIDs, a.ID) })
}

// AddAmenity links a to p. Linking the same amenity twice is a no-op.
func (p *Place) AddAmenity(a *Amenity) {
	if !slices.Contains(p.AmenityIDs, a.ID) {
		p.AmenityIDs = append(p.AmenityIDs, a.ID)
	}
}
