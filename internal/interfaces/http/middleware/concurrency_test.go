package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(limiter *ConcurrencyLimiter, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/work", handler)
	return r
}

func TestConcurrencyLimiter_AllowsUpToLimit(t *testing.T) {
	limiter := NewConcurrencyLimiter(2, 0)
	r := newLimitedRouter(limiter, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestConcurrencyLimiter_RejectsBeyondQueue(t *testing.T) {
	limiter := NewConcurrencyLimiter(1, 0)

	release := make(chan struct{})
	started := make(chan struct{})
	r := newLimitedRouter(limiter, func(c *gin.Context) {
		close(started)
		<-release
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}()

	<-started

	// Slot is held and the queue has no room: reject immediately
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	close(release)
	wg.Wait()
}

func TestConcurrencyLimiter_QueuedRequestRuns(t *testing.T) {
	limiter := NewConcurrencyLimiter(1, 1)

	release := make(chan struct{})
	started := make(chan struct{})
	r := newLimitedRouter(limiter, func(c *gin.Context) {
		select {
		case <-started:
		default:
			close(started)
			<-release
		}
		c.Status(http.StatusOK)
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}()

	<-started

	// Second request queues, then runs once the slot frees
	var qwg sync.WaitGroup
	qwg.Add(1)
	go func() {
		defer qwg.Done()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/work", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}()

	assert.Eventually(t, func() bool {
		return limiter.Waiting() == 1
	}, time.Second, 5*time.Millisecond)

	close(release)
	wg.Wait()
	qwg.Wait()

	assert.Equal(t, int64(0), limiter.Waiting())
	assert.Equal(t, 0, limiter.InFlight())
}
