package models

type Order struct {
	ID           string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CustomerName string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	Items        OrderItems `gorm:"type:text;serializer:json" json:"items"`
	TotalPrice   float64    `gorm:"type:decimal(10,2);not null" json:"total_price"`
	IsPaid       bool       `gorm:"not null;default:false" json:"is_paid"`
	// RFC 3339 UTC, set once at creation. Kept as text so the stored value
	// round-trips byte-for-byte.
	CreatedAt string `gorm:"type:varchar(40);not null;autoCreateTime:false" json:"created_at"`
}
