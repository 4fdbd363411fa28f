package setup

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi"
	"github.com/LavaJover/shvark-requisites-service/internal/delivery/httpapi/handlers"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	serviceName     = "requisites"
	shutdownTimeout = 10 * time.Second
)

// Run serves the HTTP API and the gRPC health endpoint until ctx is done.
func Run(ctx context.Context, deps *Dependencies, ucs *UseCases) error {
	cfg := deps.Config
	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpapi.SetupRouter(
		deps.Logger,
		deps.Registry,
		handlers.NewRequisiteHandler(ucs.RequisiteUsecase),
		handlers.NewReferenceHandler(ucs.ReferenceUsecase),
	)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		deps.Logger.Info("http server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
		healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
		deps.Logger.Info("grpc health server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		deps.Logger.Info("shutting down")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
