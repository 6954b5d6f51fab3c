package models

// SettingsID keys the single app_settings row.
const SettingsID = "app_settings"

type AppSettings struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PaymentLink string `gorm:"type:text" json:"payment_link"`
	IsEditMode  bool   `gorm:"not null;default:false" json:"is_edit_mode"`
}

func DefaultAppSettings() AppSettings {
	return AppSettings{
		ID:          SettingsID,
		PaymentLink: "",
		IsEditMode:  false,
	}
}
