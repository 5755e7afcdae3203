package middleware

import (
	"net/http"
	"sync/atomic"

	"github.com/ecom/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ConcurrencyLimiter bounds the number of requests running at once.
// Up to maxConcurrent requests proceed immediately; up to queueDepth
// more wait for a slot. Anything beyond that is rejected right away
// so the server sheds load instead of stacking requests without
// bound. Sized to match the database pool, which is the real
// bottleneck behind every request.
type ConcurrencyLimiter struct {
	slots   chan struct{}
	waiting atomic.Int64
	depth   int64
}

// NewConcurrencyLimiter creates a limiter with the given number of
// concurrent slots and wait-queue depth
func NewConcurrencyLimiter(maxConcurrent, queueDepth int) *ConcurrencyLimiter {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if queueDepth < 0 {
		queueDepth = 0
	}
	return &ConcurrencyLimiter{
		slots: make(chan struct{}, maxConcurrent),
		depth: int64(queueDepth),
	}
}

// Middleware returns the gin middleware enforcing the limit
func (l *ConcurrencyLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Fast path: a slot is free
		select {
		case l.slots <- struct{}{}:
		default:
			// All slots busy; join the wait queue if there is room
			if l.waiting.Add(1) > l.depth {
				l.waiting.Add(-1)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable,
					dto.NewErrorResponseWithRequestID(dto.ErrCodeServerBusy,
						"Server is busy. Please try again later.",
						c.GetString("request_id")))
				return
			}
			select {
			case l.slots <- struct{}{}:
				l.waiting.Add(-1)
			case <-c.Request.Context().Done():
				l.waiting.Add(-1)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable,
					dto.NewErrorResponseWithRequestID(dto.ErrCodeServerBusy,
						"Request cancelled while waiting for capacity.",
						c.GetString("request_id")))
				return
			}
		}

		defer func() { <-l.slots }()
		c.Next()
	}
}

// InFlight returns how many requests currently hold a slot
func (l *ConcurrencyLimiter) InFlight() int {
	return len(l.slots)
}

// Waiting returns how many requests are queued for a slot
func (l *ConcurrencyLimiter) Waiting() int64 {
	return l.waiting.Load()
}
