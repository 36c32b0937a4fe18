package router

import (
	"crypto/subtle"
	"net/http"

	"github.com/LavaJover/cognit-service/internal/delivery/http/dto/response"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminKeyHeader = "X-API-KEY"

// AdminRequired accepts the key from the X-API-KEY header or the api_key
// query parameter.
func AdminRequired(apiKey string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(adminKeyHeader)
		if provided == "" {
			provided = c.Query("api_key")
		}
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			log.Warn("admin access denied", zap.String("path", c.Request.URL.Path), zap.String("client_ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
			return
		}
		c.Next()
	}
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", info.ResetTime.UTC().Format(http.TimeFormat))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{Error: "too many requests, try again later"})
}
