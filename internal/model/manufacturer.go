package model

import "time"

// Manufacturer is a production shop offering devices on the platform.
type Manufacturer struct {
	ID            string   `gorm:"primaryKey;size:64"`
	Name          string   `gorm:"size:256;not null"`
	ToleranceTier string   `gorm:"size:16"`
	Materials     []string `gorm:"serializer:json"`
	CapacityScore float64
	QualityScore  float64

	// Rating aggregates, recomputed whenever a rating is recorded.
	AverageRating        float64
	TotalRatingsReceived int
	TotalJobsCompleted   int

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Devices []Device `gorm:"foreignKey:ManufacturerID"`
	Ratings []Rating `gorm:"foreignKey:ManufacturerID"`
}
