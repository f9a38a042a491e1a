// Package gateway serves a JSON REST API in front of the gRPC user
// service. Every route forwards to the gRPC contract through a client
// connection, so the gateway sees exactly what remote callers see.
package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/gin-gonic/gin"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	applicationName    = "User Directory gRPC Service"
	applicationVersion = "1.0.0"
)

// Options configures a Gateway.
type Options struct {
	// Address is the HTTP listen address.
	Address string
	// GRPCAddress is reported by /api/health.
	GRPCAddress     string
	ShutdownTimeout time.Duration
	// Metrics, when set, is mounted at /metrics.
	Metrics http.Handler
}

type Gateway struct {
	opts   Options
	users  pb.UserServiceClient
	health healthpb.HealthClient
	logger logging.Logger
	now    func() time.Time
}

func New(opts Options, l logging.Logger, users pb.UserServiceClient, health healthpb.HealthClient) *Gateway {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}
	return &Gateway{
		opts:   opts,
		users:  users,
		health: health,
		logger: l.With("module", "gateway"),
		now:    time.Now,
	}
}

// Router builds the gin engine with every route mounted.
func (g *Gateway) Router() *gin.Engine {
	r := gin.New()
	// ClientIP is the socket peer; X-Forwarded-For from callers is not trusted.
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery(), g.requestLogger())

	api := r.Group("/api")
	{
		api.POST("/users", g.createUser)
		api.GET("/users", g.listUsers)
		api.GET("/users/:id", g.getUser)
		api.PUT("/users/:id", g.updateUser)
		api.DELETE("/users/:id", g.deleteUser)
		api.GET("/users/status/:status", g.usersByStatus)
		api.GET("/health", g.healthCheck)
		api.GET("/info", g.info)
	}

	if g.opts.Metrics != nil {
		r.GET("/metrics", gin.WrapH(g.opts.Metrics))
	}

	r.NoRoute(func(c *gin.Context) {
		g.writeError(c, http.StatusNotFound, "Route not found")
	})

	return r
}

// Run serves HTTP until ctx is done, then shuts down within the configured
// timeout.
func (g *Gateway) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              g.opts.Address,
		Handler:           g.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		g.logger.Info(ctx, "Starting HTTP gateway", "address", g.opts.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	g.logger.Info(context.Background(), "Stopping HTTP gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), g.opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
