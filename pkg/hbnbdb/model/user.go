package model

type User struct {
	Base
	Email     string `json:"email" gorm:"column:email;size:128;not null"`
	Password  string `json:"password" gorm:"column:password;size:128;not null"`
	FirstName string `json:"first_name" gorm:"column:first_name;size:128"`
	LastName  string `json:"last_name" gorm:"column:last_name;size:128"`
}

func NewUser() *User {
	return &User{Base: newBase()}
}

func (User) TableName() string { return "users" }

func (*User) Kind() Kind { return KindUser }

func (u *User) String() string { return describe(u) }

func (u *User) fieldValues() map[string]any {
	return map[string]any{
		"email":      u.Email,
		"password":   u.Password,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
	}
}

// Places are the places owned by u.
func (u *User) Places(l Lister) ([]*Place, error) {
	return related(l, KindPlace, func(p *Place) bool { return p.UserID == u.ID })
}

// Reviews are the reviews written by u.
func (u *User) Reviews(l Lister) ([]*Review, error) {
	return related(l, KindReview, func(r *Review) bool { return r.UserID == u.ID })
}
