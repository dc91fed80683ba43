package middleware_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"studyroom/config"
	metricsMocks "studyroom/infras/metrics/mocks"
	"studyroom/infras/otel/mocks"
	"studyroom/shared/cache"
	cacheMocks "studyroom/shared/cache/mocks"
	"studyroom/transport/http/middleware"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingRecorder struct {
	observations []observation
}

func (r *recordingRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, route: route, status: status})
}

func (r *recordingRecorder) BookingSubmitted(_ string)      {}
func (r *recordingRecorder) BookingCancelled(_ bool)        {}
func (r *recordingRecorder) NotificationDelivered(_ string) {}

func (r *recordingRecorder) Handler() http.Handler {
	return http.NotFoundHandler()
}

func ok() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	recorder := &recordingRecorder{}
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil, recorder)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.Metrics)
	router.Get("/room/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/room/abc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/room/def", nil))

	assert.Equal(t, []observation{
		{method: http.MethodGet, route: "/room/{id}", status: http.StatusNotFound},
		{method: http.MethodGet, route: "/room/{id}", status: http.StatusNotFound},
	}, recorder.observations)
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name      string
		setup     func(c *cacheMocks.MockRedisCache)
		status    int
		remaining string
	}{
		{
			name: "first request opens the window",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
				c.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			status:    http.StatusOK,
			remaining: "4",
		},
		{
			name: "over the limit is rejected",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
					*value.(*int) = 5

					return nil
				})
			},
			status: http.StatusTooManyRequests,
		},
		{
			name: "cache outage lets the request through",
			setup: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setup(redisCache)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache, metricsMocks.NewRecorder())

			rec := httptest.NewRecorder()
			app.RateLimit()(ok()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get("X-RateLimit-Remaining"))
		})
	}
}

func TestCSRF(t *testing.T) {
	t.Run("disabled passes every request", func(t *testing.T) {
		app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil, metricsMocks.NewRecorder())

		rec := httptest.NewRecorder()
		app.CSRF()(ok()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit-booking", strings.NewReader("")))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("enabled rejects a form post without a token", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CSRF.Enable = true
		cfg.App.CSRF.Key = "0123456789abcdef0123456789abcdef"

		app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, metricsMocks.NewRecorder())
		handler := app.CSRF()(ok())

		get := httptest.NewRecorder()
		handler.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/book", nil))
		assert.Equal(t, http.StatusOK, get.Code)

		post := httptest.NewRecorder()
		handler.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/submit-booking", strings.NewReader("")))
		assert.Equal(t, http.StatusForbidden, post.Code)
	})
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://rooms.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, metricsMocks.NewRecorder())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	req.Header.Set("Origin", "https://rooms.example.com")

	rec := httptest.NewRecorder()
	app.CORS()(ok()).ServeHTTP(rec, req)

	assert.Equal(t, "https://rooms.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
