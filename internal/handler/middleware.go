package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um novo, e o devolve na resposta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":     c.Request.Method,
			"url":        c.Request.URL.String(),
			"remoteAddr": c.ClientIP(),
			"userAgent":  c.Request.UserAgent(),
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"request_id": requestID(c),
		}).Info("requisição recebida")
	}
}

// recoverInternal responde 500 no formato de erro da API quando um handler entra em pânico.
func recoverInternal(c *gin.Context, recovered any) {
	log.WithFields(log.Fields{
		"panic":      recovered,
		"request_id": requestID(c),
	}).Error("pânico durante a requisição")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"erro": msgInternal})
}
