package models

import "time"

// LocalSlotModel stores one named slot of locally edited requisites as a
// JSON array.
type LocalSlotModel struct {
	Name      string `gorm:"primaryKey;type:varchar(64)"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (LocalSlotModel) TableName() string {
	return "local_slots"
}
