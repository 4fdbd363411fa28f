package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/handlers"
	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/response"
	"github.com/LavaJover/shvark-requisites-service/internal/domain"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/access"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderUserID    = "X-User-ID"
	HeaderUserRole  = "X-User-Role"

	// Used when the caller does not identify the operator.
	demoUserID = "demo-user-id"
)

func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(HeaderRequestID, requestID)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}

func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("http request",
			"request_id", c.GetString(HeaderRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

func RecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered", "request_id", c.GetString(HeaderRequestID), "panic", rec)
				response.Fail(c, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			}
		}()
		c.Next()
	}
}

// CurrentUserMiddleware reads the active operator supplied by the upstream
// gateway. Requests without headers act as the demo admin.
func CurrentUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := domain.CurrentUser{
			ID:   c.GetHeader(HeaderUserID),
			Role: domain.Role(c.GetHeader(HeaderUserRole)),
		}
		if user.ID == "" {
			user.ID = demoUserID
		}
		if user.Role == "" {
			user.Role = domain.RoleAdmin
		}
		if !user.Role.Valid() {
			response.Error(c, fmt.Errorf("%w: %s", domain.ErrUnknownRole, user.Role))
			return
		}
		c.Set(handlers.CurrentUserKey, user)
		c.Next()
	}
}

// RequireRoute closes a route group to roles without access to the page.
func RequireRoute(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := handlers.CurrentUser(c)
		if !access.CanAccess(route, user.Role) {
			response.Error(c, fmt.Errorf("%w %s: %s", domain.ErrAccessDenied, user.Role, route))
			return
		}
		c.Next()
	}
}
