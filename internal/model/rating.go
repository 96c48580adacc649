package model

import "time"

// Rating is one 1-5 review left for a manufacturer after a job.
type Rating struct {
	ID             int64  `gorm:"autoIncrement;primaryKey"`
	ManufacturerID string `gorm:"index;not null;size:64"`
	JobID          string `gorm:"size:64"`
	Rating         float64
	Comment        string `gorm:"size:1024"`
	RatedAt        time.Time
	CreatedAt      time.Time `gorm:"not null"`
}
