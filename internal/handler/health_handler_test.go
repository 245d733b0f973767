package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"comments-api/internal/mocks"
)

func newHealthRouter(h *HealthHandler) *gin.Engine {
	router := gin.New()
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
	router.GET("/live", h.Live)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthy store", func(t *testing.T) {
		store := mocks.NewMockCommentRepository(t)
		store.EXPECT().Ping(mock.Anything).Return(nil)
		router := newHealthRouter(NewHealthHandler(store))

		w := get(router, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"healthy","version":"1.0.0","services":{"store":"healthy"}}`, w.Body.String())
	})

	t.Run("unhealthy store", func(t *testing.T) {
		store := mocks.NewMockCommentRepository(t)
		store.EXPECT().Ping(mock.Anything).Return(errors.New("down"))
		router := newHealthRouter(NewHealthHandler(store))

		w := get(router, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})

	t.Run("ping gets a deadline", func(t *testing.T) {
		store := mocks.NewMockCommentRepository(t)
		store.EXPECT().Ping(mock.Anything).RunAndReturn(func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		})
		router := newHealthRouter(NewHealthHandler(store))

		assert.Equal(t, http.StatusOK, get(router, "/ready").Code)
	})

	t.Run("not ready", func(t *testing.T) {
		store := mocks.NewMockCommentRepository(t)
		store.EXPECT().Ping(mock.Anything).Return(errors.New("down"))
		router := newHealthRouter(NewHealthHandler(store))

		w := get(router, "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not ready"}`, w.Body.String())
	})

	t.Run("live never touches the store", func(t *testing.T) {
		store := mocks.NewMockCommentRepository(t)
		router := newHealthRouter(NewHealthHandler(store))

		w := get(router, "/live")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
	})
}
