package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/handlers"
	"github.com/LavaJover/shvark-requisites-service/internal/usecase/access"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(
	logger *slog.Logger,
	gatherer prometheus.Gatherer,
	requisiteHandler *handlers.RequisiteHandler,
	referenceHandler *handlers.ReferenceHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggerMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1", CurrentUserMiddleware())
	{
		api.GET("/navigation", referenceHandler.Navigation)

		requisites := api.Group("/requisites", RequireRoute(access.RouteRequisites))
		{
			requisites.GET("", requisiteHandler.List)
			requisites.POST("", requisiteHandler.Create)
			requisites.GET("/filter-options", referenceHandler.RequisiteFilterOptions)
			requisites.GET("/:id", requisiteHandler.Get)
			requisites.GET("/:id/form", requisiteHandler.Form)
			requisites.PUT("/:id", requisiteHandler.Edit)
			requisites.POST("/:id/toggle-status", requisiteHandler.ToggleStatus)
			requisites.DELETE("/:id", requisiteHandler.Archive)
		}

		api.GET("/banks", RequireRoute(access.RouteBanks), referenceHandler.Banks)
		api.GET("/users", RequireRoute(access.RouteUsers), referenceHandler.Users)
		api.GET("/history", RequireRoute(access.RouteHistory), referenceHandler.History)
	}

	return r
}
