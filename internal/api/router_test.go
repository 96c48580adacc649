package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ArjunParadkar/M.A.M.A/config"
	"github.com/ArjunParadkar/M.A.M.A/internal/model"
	"github.com/ArjunParadkar/M.A.M.A/internal/store"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			RateLimitPerSec: 1000,
			CacheTTLSeconds: 1,
		},
		Scheduler: config.SchedulerConfig{
			DefaultDailyHours:   8,
			WorkdayStartHour:    8,
			CapacityHoursPerDay: 16,
		},
		Pricing: config.PricingConfig{
			MarketRatePerHour:    50,
			StandardDeliveryDays: 7,
		},
		Push: config.PushConfig{PublicKey: "test-public-key"},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Manufacturer{},
		&model.Device{},
		&model.Job{},
		&model.Rating{},
		&model.PushSubscription{},
	))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())
	})

	s := store.NewGormStore(db)
	return NewRouter(s, nil, testConfig(), &webpush.Options{}), s
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}
