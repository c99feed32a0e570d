package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inference-gateway/groq-mcp-client/logger"
)

type Logger interface {
	Middleware() gin.HandlerFunc
}

type LoggerImpl struct {
	logger logger.Logger
}

func NewLoggerMiddleware(logger logger.Logger) (Logger, error) {
	return &LoggerImpl{
		logger: logger,
	}, nil
}

func (l *LoggerImpl) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		l.logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}
