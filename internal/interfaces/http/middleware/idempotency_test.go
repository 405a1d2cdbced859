package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	redispkg "staff-roster.backend/pkg/redis"
)

func newMiniStore(t *testing.T) (*miniredis.Miniredis, *redispkg.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	cli := redisv9.NewClient(&redisv9.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = cli.Close() })
	return srv, redispkg.NewFromClient(cli)
}

func idempotentRouter(store IdempotencyStore, calls *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(IdempotencyMiddleware(store))
	r.POST("/api/skills/", func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return r
}

func postWithKey(r http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/skills/", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotencyMiddleware_NoHeaderPassthrough(t *testing.T) {
	_, store := newMiniStore(t)
	calls := 0
	r := idempotentRouter(store, &calls, http.StatusCreated)

	postWithKey(r, "")
	postWithKey(r, "")
	require.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_NilStoreDisabled(t *testing.T) {
	calls := 0
	r := idempotentRouter(nil, &calls, http.StatusCreated)

	postWithKey(r, "k")
	postWithKey(r, "k")
	require.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ReplaysStatusAndBody(t *testing.T) {
	srv, store := newMiniStore(t)
	calls := 0
	r := idempotentRouter(store, &calls, http.StatusCreated)

	first := postWithKey(r, "key-1")
	require.Equal(t, http.StatusCreated, first.Code)
	require.Empty(t, first.Header().Get(IdempotencyHitHeader))

	second := postWithKey(r, "key-1")
	require.Equal(t, http.StatusCreated, second.Code)
	require.Equal(t, "true", second.Header().Get(IdempotencyHitHeader))
	require.JSONEq(t, first.Body.String(), second.Body.String())
	require.Contains(t, second.Header().Get("Content-Type"), "application/json")
	require.Equal(t, 1, calls)

	ttl := srv.TTL("idempotency:POST:/api/skills/:key-1")
	require.Equal(t, RetentionDuration, ttl)
}

func TestIdempotencyMiddleware_FailureIsNotCached(t *testing.T) {
	srv, store := newMiniStore(t)
	calls := 0
	r := idempotentRouter(store, &calls, http.StatusBadRequest)

	postWithKey(r, "key-2")
	postWithKey(r, "key-2")
	require.Equal(t, 2, calls)
	require.False(t, srv.Exists("idempotency:POST:/api/skills/:key-2"))
}

func TestIdempotencyMiddleware_ProcessingConflict(t *testing.T) {
	srv, store := newMiniStore(t)
	require.NoError(t, srv.Set("idempotency:POST:/api/skills/:key-3", processingMarker))
	calls := 0
	r := idempotentRouter(store, &calls, http.StatusCreated)

	w := postWithKey(r, "key-3")
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "CONFLICT")
	require.Equal(t, 0, calls)
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("connection refused")
}

func (failingStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return false, errors.New("connection refused")
}

func (failingStore) Del(ctx context.Context, key string) error {
	return errors.New("connection refused")
}

func TestIdempotencyMiddleware_StoreErrorPassthrough(t *testing.T) {
	calls := 0
	r := idempotentRouter(failingStore{}, &calls, http.StatusAccepted)

	w := postWithKey(r, "key-4")
	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, 1, calls)
}

func TestIdempotencyMiddleware_CorruptEntryReprocessed(t *testing.T) {
	srv, store := newMiniStore(t)
	require.NoError(t, srv.Set("idempotency:POST:/api/skills/:key-5", "{not json"))
	calls := 0
	r := idempotentRouter(store, &calls, http.StatusCreated)

	w := postWithKey(r, "key-5")
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, 1, calls)
}
