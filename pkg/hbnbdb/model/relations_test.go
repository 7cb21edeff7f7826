package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeLister map[string]Entity

func (l fakeLister) All(kinds ...Kind) (map[string]Entity, error) {
	result := make(map[string]Entity)
	for key, e := range l {
		for _, kind := range kinds {
			if e.Kind() == kind {
				result[key] = e
			}
		}
	}
	return result, nil
}

func (l fakeLister) add(entities ...Entity) fakeLister {
	for _, e := range entities {
		l[Key(e)] = e
	}
	return l
}

func TestStateCities(t *testing.T) {
	ca, nv := NewState(), NewState()
	sf, la, reno := NewCity(), NewCity(), NewCity()
	sf.Name, sf.StateID = "San Francisco", ca.ID
	la.Name, la.StateID = "Los Angeles", ca.ID
	reno.Name, reno.StateID = "Reno", nv.ID

	l := fakeLister{}.add(ca, nv, sf, la, reno)

	cities, err := ca.Cities(l)
	require.NoError(t, err)
	require.Equal(t, []*City{la, sf}, cities)

	cities, err = nv.Cities(l)
	require.NoError(t, err)
	require.Equal(t, []*City{reno}, cities)
}

func TestPlaceRelations(t *testing.T) {
	owner := NewUser()
	city := NewCity()
	p := NewPlace()
	p.UserID, p.CityID = owner.ID, city.ID

	wifi, pool := NewAmenity(), NewAmenity()
	wifi.Name, pool.Name = "Wifi", "Pool"
	p.AddAmenity(wifi)
	p.AddAmenity(wifi)
	p.AddAmenity(pool)
	require.Len(t, p.AmenityIDs, 2)

	r := NewReview()
	r.PlaceID, r.UserID, r.Text = p.ID, owner.ID, "Great"

	l := fakeLister{}.add(owner, city, p, wifi, pool, r, NewAmenity(), NewReview())

	amenities, err := p.Amenities(l)
	require.NoError(t, err)
	require.Equal(t, []*Amenity{pool, wifi}, amenities)

	reviews, err := p.Reviews(l)
	require.NoError(t, err)
	require.Equal(t, []*Review{r}, reviews)

	places, err := owner.Places(l)
	require.NoError(t, err)
	require.Equal(t, []*Place{p}, places)

	places, err = city.Places(l)
	require.NoError(t, err)
	require.Equal(t, []*Place{p}, places)

	reviews, err = owner.Reviews(l)
	require.NoError(t, err)
	require.Equal(t, []*Review{r}, reviews)
}
