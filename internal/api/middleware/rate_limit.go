package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/mailreply/internal/api/models"
	"github.com/jroosing/mailreply/internal/ratelimit"
)

// RateLimit rejects requests the limiter does not admit with 429.
// onReject, when set, is called for every rejected request.
func RateLimit(limiter *ratelimit.Limiter, onReject func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		if onReject != nil {
			onReject()
		}
		c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "rate limit exceeded"})
	}
}
