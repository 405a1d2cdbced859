package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "staff-roster.backend/internal/domain/errors"
	"staff-roster.backend/pkg/logger"
	"staff-roster.backend/pkg/metrics"
	"staff-roster.backend/pkg/redis"
)

const (
	IdempotencyHeader    = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"
	// LockDuration is the time we hold the lock while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long we keep the response
	RetentionDuration = 24 * time.Hour

	processingMarker = "processing"
)

// IdempotencyStore is the subset of the redis client the middleware needs.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the first successful response of a write
// request carrying an Idempotency-Key. A nil store disables it.
func IdempotencyMiddleware(store IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if store == nil || key == "" || c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		storageKey := "idempotency:" + c.Request.Method + ":" + c.Request.URL.Path + ":" + key

		val, err := store.Get(ctx, storageKey)
		switch {
		case err == nil && val == processingMarker:
			metrics.ObserveIdempotency("conflict")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    domainerrors.CodeConflict,
				"message": "Request already in progress",
			})
			return
		case err == nil:
			var cached cachedResponse
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr != nil {
				logger.Warn(ctx, "discarding unreadable idempotency entry", zap.String("key", storageKey), zap.Error(jsonErr))
				_ = store.Del(ctx, storageKey)
				break
			}
			metrics.ObserveIdempotency("replayed")
			c.Header(IdempotencyHitHeader, "true")
			c.Data(cached.Status, cached.ContentType, []byte(cached.Body))
			c.Abort()
			return
		case !redis.IsNil(err):
			logger.Warn(ctx, "idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}

		locked, err := store.SetNX(ctx, storageKey, processingMarker, LockDuration)
		if err != nil || !locked {
			metrics.ObserveIdempotency("conflict")
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    domainerrors.CodeConflict,
				"message": "Request already in progress",
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			// Remove key so retry is possible
			_ = store.Del(ctx, storageKey)
			return
		}
		payload, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        w.body.String(),
		})
		if err == nil {
			err = store.Set(ctx, storageKey, payload, RetentionDuration)
		}
		if err != nil {
			logger.Warn(ctx, "failed to store idempotent response", zap.Error(err))
			_ = store.Del(ctx, storageKey)
			return
		}
		metrics.ObserveIdempotency("stored")
	}
}
