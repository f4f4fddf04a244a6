package web

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/numiscat/numisapi/web/middleware"
	"github.com/numiscat/numisapi/web/transport"
)

// setupMiddleware configura los middleware del motor Gin.
func (s *Service) setupMiddleware() {
	s.router.Use(
		middleware.RequestID(),
		gin.LoggerWithWriter(log.Logger, "/health"),
		recoveryMiddleware(),
		corsMiddleware(),
	)
}

// corsMiddleware aplica una política CORS permisiva.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// recoveryMiddleware se recupera de cualquier panic y responde un 500.
func recoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recuperado")
				transport.InternalServerError(c, "Error interno del servidor")
			}
		}()
		c.Next()
	}
}
