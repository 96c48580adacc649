package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
)

// Store defines the database operations the service relies on. The
// scheduling engine itself never touches the store; handlers assemble
// engine input from request payloads and these lookups.
type Store interface {
	DB() *gorm.DB

	GetManufacturer(ctx context.Context, id string) (model.Manufacturer, error)

	UpsertDevices(ctx context.Context, manufacturerID string, devices []model.Device) error
	ListDevices(ctx context.Context, manufacturerID string) ([]model.Device, error)

	CreateJob(ctx context.Context, job *model.Job) error
	GetJob(ctx context.Context, id string) (model.Job, error)
	ListOpenJobs(ctx context.Context) ([]model.Job, error)
	ListCompletedJobs(ctx context.Context, manufacturerID string, from, to time.Time) ([]model.Job, error)

	CreateRating(ctx context.Context, rating *model.Rating) error
	ListRatings(ctx context.Context, manufacturerID string) ([]model.Rating, error)
	UpdateRatingAggregates(ctx context.Context, manufacturerID string, average float64, total int) error

	UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
}

// gormStore implements Store using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) GetManufacturer(ctx context.Context, id string) (model.Manufacturer, error) {
	var m model.Manufacturer
	if err := s.db.WithContext(ctx).Preload("Devices").First(&m, "id = ?", id).Error; err != nil {
		return model.Manufacturer{}, err
	}
	return m, nil
}

// UpsertDevices replaces the stored state of the given devices, keyed by
// device id. The manufacturer id on each row is forced to the owner being
// updated.
func (s *gormStore) UpsertDevices(ctx context.Context, manufacturerID string, devices []model.Device) error {
	if len(devices) == 0 {
		return nil
	}
	for i := range devices {
		devices[i].ManufacturerID = manufacturerID
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"manufacturer_id", "device_type", "available_hours",
				"maintenance", "current_tasks", "efficiency_factor", "updated_at",
			}),
		}).Create(&devices).Error; err != nil {
			return fmt.Errorf("batch upsert devices failed: %w", err)
		}
		return nil
	})
}

func (s *gormStore) ListDevices(ctx context.Context, manufacturerID string) ([]model.Device, error) {
	var devices []model.Device
	if err := s.db.WithContext(ctx).Where("manufacturer_id = ?", manufacturerID).Order("id").Find(&devices).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices for manufacturer %s: %w", manufacturerID, err)
	}
	return devices, nil
}

func (s *gormStore) CreateJob(ctx context.Context, job *model.Job) error {
	if job.Status == "" {
		job.Status = model.JobStatusOpen
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job %s: %w", job.ID, err)
	}
	return nil
}

func (s *gormStore) GetJob(ctx context.Context, id string) (model.Job, error) {
	var job model.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		return model.Job{}, err
	}
	return job, nil
}

func (s *gormStore) ListOpenJobs(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := s.db.WithContext(ctx).Where("status = ?", model.JobStatusOpen).Order("created_at").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}
	return jobs, nil
}

func (s *gormStore) ListCompletedJobs(ctx context.Context, manufacturerID string, from, to time.Time) ([]model.Job, error) {
	var jobs []model.Job
	err := s.db.WithContext(ctx).
		Where("manufacturer_id = ? AND status = ?", manufacturerID, model.JobStatusCompleted).
		Where("completed_at >= ? AND completed_at <= ?", from, to).
		Order("completed_at").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list completed jobs for manufacturer %s: %w", manufacturerID, err)
	}
	return jobs, nil
}

func (s *gormStore) CreateRating(ctx context.Context, rating *model.Rating) error {
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("failed to create rating for manufacturer %s: %w", rating.ManufacturerID, err)
	}
	return nil
}

func (s *gormStore) ListRatings(ctx context.Context, manufacturerID string) ([]model.Rating, error) {
	var ratings []model.Rating
	if err := s.db.WithContext(ctx).Where("manufacturer_id = ?", manufacturerID).Order("rated_at").Find(&ratings).Error; err != nil {
		return nil, fmt.Errorf("failed to list ratings for manufacturer %s: %w", manufacturerID, err)
	}
	return ratings, nil
}

// UpdateRatingAggregates writes the denormalized rating figures onto the
// manufacturer row.
func (s *gormStore) UpdateRatingAggregates(ctx context.Context, manufacturerID string, average float64, total int) error {
	err := s.db.WithContext(ctx).Model(&model.Manufacturer{}).
		Where("id = ?", manufacturerID).
		Updates(map[string]any{
			"average_rating":         average,
			"total_ratings_received": total,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update rating aggregates for manufacturer %s: %w", manufacturerID, err)
	}
	return nil
}

func (s *gormStore) UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "manufacturer_id"}),
	}).Create(sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription %s: %w", sub.Endpoint, err)
	}
	return nil
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", endpoint, err)
	}
	return nil
}
