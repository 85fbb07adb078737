package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency guards POST endpoints against double submission. When a client
// sends an Idempotency-Key header, a Redis SetNX lock rejects a concurrent
// duplicate while the first request is still in flight. The lock expires on
// its own so a crashed request cannot wedge the key forever.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		lockKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block writes.
			c.Next()
			return
		}

		if !isNew {
			response.Error(c, http.StatusConflict, "Request is already being processed")
			c.Abort()
			return
		}

		c.Next()

		rdb.Del(c.Request.Context(), lockKey)
	}
}
