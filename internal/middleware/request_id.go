package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Package middleware provides HTTP middleware components for request
// identification, logging, telemetry, and other cross-cutting concerns.

// RequestIDKey is the gin context key under which the request ID is stored.
const RequestIDKey = "request_id"

// RequestIDHeader is the header used to propagate the request ID.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a unique identifier. An incoming
// X-Request-ID header is honored so upstream callers can correlate logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request ID stored on the context, if any.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
