package models

// OrderStatus represents the lifecycle states of a delivery order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusOutForDelivery,
	StatusDelivered,
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is a delivery order and the dish lines it was placed with.
type Order struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	DeliverTo    string      `json:"deliverTo" gorm:"not null"`
	MobileNumber string      `json:"mobileNumber" gorm:"not null"`
	Status       OrderStatus `json:"status" gorm:"not null;default:'pending'"`
	Dishes       []OrderDish `json:"dishes" gorm:"serializer:json"`
}

// OrderDish is one line of an order, kept exactly as the client sent it.
// Only quantity is required; any other fields (dishId, a dish snapshot)
// are stored and returned untouched.
type OrderDish map[string]any

// Quantity returns the line quantity, or 0 when it is missing or not a number.
func (d OrderDish) Quantity() int {
	f, ok := d["quantity"].(float64)
	if !ok {
		return 0
	}
	return int(f)
}

// Key returns the order id.
func (o Order) Key() string { return o.ID }
