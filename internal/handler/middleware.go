package handler

import (
	"net/http"
	"time"

	"matchday/frontend/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionContextKey = "sessionContext"

// RequestLogger logs one structured line per request with a generated
// request id.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("requestID", requestID)

		c.Next()

		log.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// SessionContext builds the per-request session context from the cookie
// store and makes it available to every handler downstream.
func SessionContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.NewStore(sessions.Default(c))
		c.Set(sessionContextKey, session.NewContext(store))
		c.Next()
	}
}

// RequireLogin sends logged-out visitors to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).LoggedIn() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Context {
	return c.MustGet(sessionContextKey).(*session.Context)
}
