package models

// ActivityLogEntry is append-only: entries are never updated or deleted.
// OrderID is a free reference, not a foreign key.
type ActivityLogEntry struct {
	ID         string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Timestamp  string  `gorm:"type:varchar(40);not null;index" json:"timestamp"`
	Action     string  `gorm:"type:varchar(100);not null" json:"action"`
	Details    string  `gorm:"type:text" json:"details"`
	OrderID    *string `gorm:"type:varchar(36)" json:"order_id"`
	DeviceInfo *string `gorm:"type:text" json:"device_info"`
}

func (ActivityLogEntry) TableName() string {
	return "activity_log"
}
