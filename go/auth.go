package ordersserver

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/go-gin-orders-api/internal/shared/errors"
)

// APIKeyHeader carries the key for authenticated routes.
const APIKeyHeader = "x-api-key"

// VerifyAPIKey reports whether key is valid: exactly five characters that
// parse as an integer divisible by three.
func VerifyAPIKey(key string) bool {
	if len(key) != 5 {
		return false
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return false
	}
	return n%3 == 0
}

// RequireAPIKey rejects requests without a valid x-api-key header.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		values := c.Request.Header.Values(APIKeyHeader)
		if len(values) == 0 {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Missing API key"))
			c.Abort()
			return
		}
		if !VerifyAPIKey(values[0]) {
			respondProblem(c, apierrors.ErrUnauthorized.WithDetail("Invalid API key"))
			c.Abort()
			return
		}
		c.Next()
	}
}
