package category

type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Type string `gorm:"type:text;not null" json:"type"`
}

func (Category) TableName() string {
	return "categories"
}
