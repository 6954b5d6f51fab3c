package models

type MenuItem struct {
	ID       string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Category string  `gorm:"type:varchar(100);not null" json:"category"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}
