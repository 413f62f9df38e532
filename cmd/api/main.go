package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/config"
	"github.com/evanhearne/ds-serverlessREST-lab/infrastructure/di"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func newServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// serve runs srv on ln until ctx is cancelled, then drains in-flight requests
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("address", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	ln, err := net.Listen("tcp", cfg.ServerAddress)
	if err != nil {
		container.Logger.Fatal("Failed to listen", zap.String("address", cfg.ServerAddress), zap.Error(err))
	}

	container.Logger.Info("Movies API configured",
		zap.String("environment", cfg.Environment),
		zap.String("region", cfg.AWSRegion),
		zap.String("movies_table", cfg.MoviesTable),
		zap.String("cast_table", cfg.CastTable),
	)

	if err := serve(ctx, newServer(cfg, container.Router()), ln, container.Logger); err != nil {
		container.Logger.Error("Server error", zap.Error(err))
	}

	if err := container.Shutdown(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}
	log.Println("Server stopped")
}
