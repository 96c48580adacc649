package model

import "time"

// PushSubscription holds a manufacturer's browser push subscription, used
// to announce newly posted jobs their devices can take on.
type PushSubscription struct {
	Endpoint       string    `gorm:"primaryKey"`
	P256DH         string    `gorm:"column:p256dh;not null"`
	Auth           string    `gorm:"not null"`
	ManufacturerID string    `gorm:"index;not null;size:64"`
	CreatedAt      time.Time `gorm:"not null"`
}
