package model

import "time"

// MaintenanceWindow is one blackout interval posted for a device.
type MaintenanceWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Device is a physical production machine belonging to a manufacturer.
type Device struct {
	ID             string `gorm:"primaryKey;size:64"`
	ManufacturerID string `gorm:"index;not null;size:64"`
	DeviceType     string `gorm:"size:64;not null"`

	// AvailableHours maps "2006-01-02" dates to posted hours for that day.
	AvailableHours   map[string]float64  `gorm:"serializer:json"`
	Maintenance      []MaintenanceWindow `gorm:"serializer:json"`
	CurrentTasks     []string            `gorm:"serializer:json"`
	EfficiencyFactor float64             `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
