package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/samirrijal/geoframe/internal/adapters/http"
	natsadapter "github.com/samirrijal/geoframe/internal/adapters/nats"
	"github.com/samirrijal/geoframe/internal/adapters/projection"
	"github.com/samirrijal/geoframe/internal/core/domain"
	"github.com/samirrijal/geoframe/internal/core/ports"
	"github.com/samirrijal/geoframe/internal/core/usecases"
	"github.com/samirrijal/geoframe/internal/pkg/config"
	"github.com/samirrijal/geoframe/internal/pkg/logging"
	"github.com/samirrijal/geoframe/internal/pkg/metrics"
	"github.com/samirrijal/geoframe/internal/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("geoframe-api")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Structured logging
	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Telemetry
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, cfg.Telemetry.Endpoint)
		if err != nil {
			slog.Warn("telemetry init failed", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Projection
	if !projection.Known(cfg.Projection.PlanarSystem) {
		log.Fatalf("projection: unknown planar system %q", cfg.Projection.PlanarSystem)
	}
	projSvc := usecases.NewProjectionService(projection.New(), cfg.Projection.PlanarSystem)

	// Bounding frame
	mode := domain.FrameMode(cfg.Frame.Mode)
	mapper, err := usecases.NewMapper(projSvc, mode, usecases.WithLogger(logger))
	if err != nil {
		log.Fatalf("mapper: %v", err)
	}
	if mode == domain.FrameAxisAligned && cfg.Frame.HasFlat() {
		err = mapper.SetBorders(cfg.Frame.Borders())
	} else {
		err = mapper.SetGeoBorders(cfg.Frame.GeoCorners())
	}
	if err != nil {
		log.Fatalf("frame: %v", err)
	}
	metrics.FrameReconfigurations.WithLabelValues(string(mode)).Inc()

	deps := &http.Dependencies{
		Projection: projSvc,
		Mapper:     mapper,
	}

	// NATS frame sync
	var publisher ports.FramePublisher
	if cfg.NATS.Enabled {
		pub, err := natsadapter.NewPublisher(cfg.NATS.URL)
		if err != nil {
			slog.Warn("nats unavailable, frame changes stay local", "error", err)
		} else {
			defer pub.Close()
			publisher = pub
			deps.NATS = pub.Conn()
		}
	}
	deps.Frames = usecases.NewFrameSync(mapper, publisher, instanceID(), logger)

	if deps.NATS != nil {
		sub, err := natsadapter.NewSubscriber(deps.NATS, mode)
		if err != nil {
			slog.Warn("nats subscriber unavailable", "error", err)
		} else {
			defer sub.Close()
			err = sub.SubscribeFrameChanges(ctx, func(ctx context.Context, change *domain.FrameChange) error {
				if err := deps.Frames.HandleRemote(ctx, change); err != nil {
					return err
				}
				if change.Origin != deps.Frames.Origin() && change.Mode == mode {
					metrics.FrameReconfigurations.WithLabelValues(string(mode)).Inc()
				}
				return nil
			})
			if err != nil {
				slog.Warn("subscribe frame changes failed", "error", err)
			}
		}
	}

	// Fiber
	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    64 * 1024,
		AppName:      "GeoFrame API",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       3600,
	}))

	http.SetupRoutes(app, deps)

	// Graceful shutdown
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("API server starting",
			"addr", addr,
			"planar_system", projSvc.PlanarSystem(),
			"frame_mode", string(mode),
		)
		if err := app.Listen(addr); err != nil {
			log.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	slog.Info("shutdown signal received, draining connections...", "signal", sig.String())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}

	slog.Info("server stopped")
}

// instanceID identifies this process in published frame changes.
func instanceID() string {
	host, err := os.Hostname()
	if err != nil {
		host = "geoframe"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
