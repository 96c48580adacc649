package notification

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockSender is a mock implementation of the NotificationSender interface.
type mockSender struct {
	SendFunc func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// Send calls the mock SendFunc.
func (m *mockSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return m.SendFunc(payload, sub, options)
}

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func expectJobQuery(mock sqlmock.Sqlmock, jobID, title, requiredTypes string) {
	mock.ExpectQuery(`SELECT .* FROM "jobs" WHERE id = \$1.*LIMIT \$[0-9]+`).
		WithArgs(jobID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "required_device_types"}).
			AddRow(jobID, title, requiredTypes))
}

func expectDeviceQuery(mock sqlmock.Sqlmock, rows *sqlmock.Rows) {
	mock.ExpectQuery(`SELECT "id","manufacturer_id","device_type" FROM "devices"`).
		WillReturnRows(rows)
}

func TestWorkerPool_Dispatch(t *testing.T) {
	db, _ := newTestDB(t)
	wp := NewWorkerPool(1, db, &webpush.Options{})

	wp.Dispatch("job-123")

	select {
	case job := <-wp.jobs:
		assert.Equal(t, "job-123", job)
	case <-time.After(1 * time.Second):
		t.Fatal("timed out waiting for job to be dispatched")
	}
}

func TestWorkerPool_WorkerLogic(t *testing.T) {
	gormDB, mock := newTestDB(t)
	wp := NewWorkerPool(1, gormDB, &webpush.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	t.Run("notifies manufacturer with a matching device", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "https://example.com/push", sub.Endpoint)
				assert.Equal(t, "New job available: Bracket run", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		expectJobQuery(mock, "job-101", "Bracket run", `["cnc"]`)
		expectDeviceQuery(mock, sqlmock.NewRows([]string{"id", "manufacturer_id", "device_type"}).
			AddRow("dev-1", "m-1", "cnc_mill").
			AddRow("dev-2", "m-2", "3d_printer"))
		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" WHERE manufacturer_id IN \(\$1\)`).
			WithArgs("m-1").
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "manufacturer_id", "created_at"}).
				AddRow("https://example.com/push", "test_p256dh", "test_auth", "m-1", time.Now()))

		wp.Dispatch("job-101")
		wg.Wait()
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes expired subscription", func(t *testing.T) {
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusGone,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		expectJobQuery(mock, "job-102", "Gear batch", `["laser"]`)
		expectDeviceQuery(mock, sqlmock.NewRows([]string{"id", "manufacturer_id", "device_type"}).
			AddRow("dev-3", "m-3", "laser_cutter"))
		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" WHERE manufacturer_id IN \(\$1\)`).
			WithArgs("m-3").
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "manufacturer_id", "created_at"}).
				AddRow("https://example.com/expired", "test_p256dh", "test_auth", "m-3", time.Now()))

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "push_subscriptions" WHERE "push_subscriptions"."endpoint" = \$1`).
			WithArgs("https://example.com/expired").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		wp.Dispatch("job-102")

		// A short sleep to allow the worker to process the job
		time.Sleep(100 * time.Millisecond)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("skips sends when no device matches", func(t *testing.T) {
		called := false
		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				called = true
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		expectJobQuery(mock, "job-103", "Mold insert", `["injection_molder"]`)
		expectDeviceQuery(mock, sqlmock.NewRows([]string{"id", "manufacturer_id", "device_type"}).
			AddRow("dev-1", "m-1", "cnc_mill"))

		wp.Dispatch("job-103")
		time.Sleep(100 * time.Millisecond)

		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falls back to job id when title is empty", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)

		wp.sender = &mockSender{
			SendFunc: func(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
				assert.Equal(t, "New job available: job-104", string(payload))
				wg.Done()
				return &http.Response{
					StatusCode: http.StatusCreated,
					Body:       io.NopCloser(bytes.NewBufferString("")),
				}, nil
			},
		}

		expectJobQuery(mock, "job-104", "", `["cnc"]`)
		expectDeviceQuery(mock, sqlmock.NewRows([]string{"id", "manufacturer_id", "device_type"}).
			AddRow("dev-1", "m-1", "cnc_mill"))
		mock.ExpectQuery(`SELECT .* FROM "push_subscriptions" WHERE manufacturer_id IN \(\$1\)`).
			WithArgs("m-1").
			WillReturnRows(sqlmock.NewRows([]string{"endpoint", "p256dh", "auth", "manufacturer_id", "created_at"}).
				AddRow("https://example.com/push", "test_p256dh", "test_auth", "m-1", time.Now()))

		wp.Dispatch("job-104")
		wg.Wait()
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
