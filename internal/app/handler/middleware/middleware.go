package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequestLogger - лог каждого запроса: метод, путь, статус, время
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		entry.Info("request handled")
	}
}

// CORS allows the comma separated origins; an empty list allows any origin.
func CORS(origins string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	allowed := splitAndTrim(origins)
	if len(allowed) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowed
		corsConfig.AllowCredentials = true
	}
	corsConfig.AddAllowMethods("PATCH")
	corsConfig.AddAllowHeaders("Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	return cors.New(corsConfig)
}

func splitAndTrim(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
