package model

import "time"

// Job lifecycle states.
const (
	JobStatusOpen      = "open"
	JobStatusAssigned  = "assigned"
	JobStatusCompleted = "completed"
)

// Job is a posted manufacturing job.
type Job struct {
	ID            string `gorm:"primaryKey;size:64"`
	Title         string `gorm:"size:256"`
	Material      string `gorm:"size:64"`
	ToleranceTier string `gorm:"size:16"`

	Priority            int
	EstimatedHours      float64
	Deadline            time.Time
	RequiredDeviceTypes []string `gorm:"serializer:json"`
	MaterialsNeeded     []string `gorm:"serializer:json"`
	PayAmount           float64
	MaterialCost        float64

	Status         string  `gorm:"size:16;index;not null;default:open"`
	ManufacturerID *string `gorm:"index;size:64"` // set once assigned
	CompletedAt    *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
