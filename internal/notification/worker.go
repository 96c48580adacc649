package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"github.com/ArjunParadkar/M.A.M.A/internal/model"
	"github.com/ArjunParadkar/M.A.M.A/internal/schedule"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool fans newly posted jobs out to subscribed manufacturers. A
// manufacturer is notified when at least one of their devices can run the
// job, using the same device type matching the scheduler applies.
type WorkerPool struct {
	size    int
	jobs    chan string
	db      *gorm.DB
	webpush *webpush.Options
	match   schedule.Matcher
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, db *gorm.DB, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size),
		db:      db,
		webpush: webpushOptions,
		match:   schedule.MatchSubstring,
		sender:  &WebPushSender{},
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case jobID := <-wp.jobs:
			log.Printf("Worker %d announcing job %s", id, jobID)
			wp.announceJob(ctx, jobID)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch queues a posted job for announcement.
func (wp *WorkerPool) Dispatch(jobID string) {
	wp.jobs <- jobID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// announceJob looks up the job, finds manufacturers with a compatible
// device, and pushes a notification to each of their subscriptions.
func (wp *WorkerPool) announceJob(ctx context.Context, jobID string) {
	var job model.Job
	if err := wp.db.WithContext(ctx).First(&job, "id = ?", jobID).Error; err != nil {
		log.Printf("Error fetching job %s: %v", jobID, err)
		return
	}

	var devices []model.Device
	if err := wp.db.WithContext(ctx).Select("id", "manufacturer_id", "device_type").Find(&devices).Error; err != nil {
		log.Printf("Error fetching devices for job %s: %v", jobID, err)
		return
	}

	eligible := make(map[string]bool)
	for _, d := range devices {
		if wp.match(d.DeviceType, job.RequiredDeviceTypes) {
			eligible[d.ManufacturerID] = true
		}
	}
	if len(eligible) == 0 {
		return
	}

	ids := make([]string, 0, len(eligible))
	for id := range eligible {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var subscriptions []model.PushSubscription
	if err := wp.db.WithContext(ctx).Where("manufacturer_id IN ?", ids).Find(&subscriptions).Error; err != nil {
		log.Printf("Error fetching subscriptions for job %s: %v", jobID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	label := job.Title
	if label == "" {
		label = job.ID
	}
	message := fmt.Sprintf("New job available: %s", label)

	log.Printf("Sending %d notifications for job %s", len(subscriptions), jobID)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Expired subscriptions come back as 410 Gone and are dropped.
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
