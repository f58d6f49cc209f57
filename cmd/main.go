package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mypresence/adapters/myredis"
	"mypresence/handlers"
	"mypresence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
)

const (
	redisWaitTimeout = 30 * time.Second
	shutdownTimeout  = 10 * time.Second
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting MyPresence service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	if config.DevMode {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"redis_addr", config.Redis.Addr,
		"check_interval", config.CheckInterval,
		"check_guard", config.CheckGuard,
		"publish_presence", config.PublishPresence,
		"dev_mode", config.DevMode,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	err = myredis.WaitForRedis(ctx, redisClient, redisWaitTimeout, func(err error, next time.Duration) {
		level.Warn(logger).Log("msg", "Redis is not reachable yet", "retry_in", next, "err", err)
	})
	if err != nil {
		level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Connected to Redis")
	store := myredis.NewHashStore(redisClient)

	// Identity of this process
	hostname, err := os.Hostname()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to resolve hostname", "err", err)
		os.Exit(1)
	}
	self := service.NewInstance(config.InstancePrefix, hostname, time.Now())
	logger = log.With(logger, "instance", self.Name)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := service.NewMetrics(registry)

	heartbeat := service.NewHeartbeat(
		store,
		self,
		service.HeartbeatConfig{CheckInterval: config.CheckInterval, CheckGuard: config.CheckGuard},
		clockwork.NewRealClock(),
		metrics,
		logger,
	)
	aggregates := service.NewJSONAggregatedStore[json.RawMessage](store, heartbeat, metrics, logger)
	relay := service.NewPresenceRelay(store, service.RelayConfig{
		Enabled:     config.PublishPresence,
		KeyPrefix:   config.KeyPrefix,
		BaseChannel: config.RelayChannel,
	}, metrics, logger)
	memberLists := service.NewMemberLists[json.RawMessage](aggregates, relay, logger)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := handlers.LoadOpenAPI(ctx)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.NewOpenAPIValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(heartbeat, aggregates, memberLists, relay, logger), validator)
		handlers.RegisterOperationalHandlers(e, heartbeat.State, registry)
	}

	// Create gRPC health server
	var (
		grpcServer   *grpc.Server
		healthServer *health.Server
		grpcListener net.Listener
	)
	if config.GRPCPort > 0 {
		grpcServer, healthServer = newHealthServer()
		// Listen before registering so a busy port does not leave a record behind.
		grpcListener, err = net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
	}

	if err := heartbeat.Start(ctx); err != nil {
		level.Error(logger).Log("msg", "Failed to start heartbeat", "err", err)
		os.Exit(1)
	}
	if healthServer != nil {
		markServing(healthServer)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	if grpcServer != nil {
		g.Go(func() error {
			level.Info(logger).Log("msg", "Starting gRPC server", "addr", grpcListener.Addr())
			if err := grpcServer.Serve(grpcListener); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	}

	// Graceful shutdown: stop reporting healthy, deregister, then drain the servers.
	g.Go(func() error {
		<-gctx.Done()
		level.Info(logger).Log("msg", "Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if healthServer != nil {
			healthServer.Shutdown()
		}
		if err := heartbeat.Close(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "Error during deregistration", "err", err)
		}
		if grpcServer != nil {
			grpcServer.GracefulStop()
		}
		if err := e.Shutdown(shutdownCtx); err != nil {
			level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "Server error", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Server stopped")
}
