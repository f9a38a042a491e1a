// Package server initializes and runs the user directory: the gRPC
// service, the REST gateway in front of it, and graceful shutdown on
// signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/netx"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/ratelimiter"
	"github.com/dmitrijs2005/userdirectory/internal/server/config"
	"github.com/dmitrijs2005/userdirectory/internal/server/gateway"
	"github.com/dmitrijs2005/userdirectory/internal/server/metrics"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
	"github.com/dmitrijs2005/userdirectory/internal/server/seed"
	"github.com/dmitrijs2005/userdirectory/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	gs "github.com/dmitrijs2005/userdirectory/internal/server/grpc"
)

const limiterIdleTTL = 10 * time.Minute

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	grpcServer  *gs.GRPCServer
	gateway     *gateway.Gateway
	gatewayConn *grpc.ClientConn
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, c.LogLevel)

	us := services.NewUserService(users.NewMemoryRepository(), logger)

	if c.SeedSampleData {
		if _, err := seed.Load(context.Background(), us, logger); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	m := metrics.New(us.Count)
	limiter := ratelimiter.New(c.RateLimitRPS, c.RateLimitBurst, limiterIdleTTL)

	gsrv := gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, m, limiter)

	// the gateway talks to our own gRPC endpoint like any other client
	opts := append(pb.DialOptions(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	conn, err := grpc.NewClient(netx.DialAddress(c.EndpointAddrGRPC), opts...)
	if err != nil {
		return nil, fmt.Errorf("gateway client init error: %w", err)
	}

	gw := gateway.New(gateway.Options{
		Address:         c.EndpointAddrHTTP,
		GRPCAddress:     c.EndpointAddrGRPC,
		ShutdownTimeout: c.ShutdownTimeout,
		Metrics:         m.Handler(),
	}, logger, pb.NewUserServiceClient(conn), healthpb.NewHealthClient(conn))

	return &App{
		config:      c,
		logger:      logger,
		userService: us,
		grpcServer:  gsrv,
		gateway:     gw,
		gatewayConn: conn,
	}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.grpcServer.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
	}
}

func (app *App) startGateway(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.gateway.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP gateway failed", "error", err)
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a termination signal arrives or one
// of the servers fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "grpc", app.config.EndpointAddrGRPC, "http", app.config.EndpointAddrHTTP)

	app.initSignalHandler(ctx, cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startGateway(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.gatewayConn.Close(); err != nil {
		app.logger.Warn(context.Background(), "closing gateway connection", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
}
