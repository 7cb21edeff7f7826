package model

type State struct {
	Base
	Name string `json:"name" gorm:"column:name;size:128;not null"`
}

func NewState() *State {
	return &State{Base: newBase()}
}

func (State) TableName() string { return "states" }

func (*State) Kind() Kind { return KindState }

func (s *State) String() string { return describe(s) }

func (s *State) fieldValues() map[string]any {
	return map[string]any{"name": s.Name}
}

// Cities are all stored cities whose state_id is s.
func (s *State) Cities(l Lister) ([]*City, error) {
	return related(l, KindCity, func(c *City) bool { return c.StateID == s.ID })
}
