package model

type Review struct {
	Base
	PlaceID string `json:"place_id" gorm:"column:place_id;size:60;not null;index"`
	UserID  string `json:"user_id" gorm:"column:user_id;size:60;not null;index"`
	Text    string `json:"text" gorm:"column:text;size:1024;not null"`
}

func NewReview() *Review {
	return &Review{Base: newBase()}
}

func (Review) TableName() string { return "reviews" }

func (*Review) Kind() Kind { return KindReview }

func (r *Review) String() string { return describe(r) }

func (r *Review) fieldValues() map[string]any {
	return map[string]any{
		"place_id": r.PlaceID,
		"user_id":  r.UserID,
		"text":     r.Text,
	}
}
