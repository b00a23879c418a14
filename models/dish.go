package models

// Dish is a menu item that can be ordered.
type Dish struct {
	ID          string `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	Price       int    `json:"price" gorm:"not null"`
	ImageURL    string `json:"image_url"`
}

// Key returns the dish id.
func (d Dish) Key() string { return d.ID }

// Record is implemented by every stored resource.
type Record interface {
	Dish | Order
	Key() string
}
