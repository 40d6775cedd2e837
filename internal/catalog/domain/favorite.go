package domain

// Favorite is the user/product join row. It has no lifecycle beyond
// existence.
type Favorite struct {
	UserID    uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}
