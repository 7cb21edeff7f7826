package model

type City struct {
	Base
	StateID string `json:"state_id" gorm:"column:state_id;size:60;not null;index"`
	Name    string `json:"name" gorm:"column:name;size:128;not null"`
}

func NewCity() *City {
	return &City{Base: newBase()}
}

func (City) TableName() string { return "cities" }

func (*City) Kind() Kind { return KindCity }

func (c *City) String() string { return describe(c) }

func (c *City) fieldValues() map[string]any {
	return map[string]any{
		"state_id": c.StateID,
		"name":     c.Name,
	}
}

func (c *City) Places(l Lister) ([]*Place, error) {
	return related(l, KindPlace, func(p *Place) bool { return p.CityID == c.ID })
}
