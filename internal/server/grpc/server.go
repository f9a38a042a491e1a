// Package grpc exposes the user directory over gRPC: the UserService
// handlers, the interceptor chain and the standard health service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/ratelimiter"
	"github.com/dmitrijs2005/userdirectory/internal/server/metrics"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// userSvc is the business layer the handlers delegate to.
type userSvc interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	Get(ctx context.Context, id uint64) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, page, size int) ([]models.User, int, error)
	ListByStatus(ctx context.Context, status models.Status) ([]models.User, error)
}

type GRPCServer struct {
	pb.UnimplementedUserServiceServer
	address string
	users   userSvc
	logger  logging.Logger
	metrics *metrics.Metrics
	limiter *ratelimiter.KeyLimiter
	health  *health.Server
	now     func() time.Time
}

// NewGRPCServer wires the handlers to us. m and lim are optional; a nil
// value disables the corresponding interceptor.
func NewGRPCServer(a string, l logging.Logger, us userSvc, m *metrics.Metrics, lim *ratelimiter.KeyLimiter) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		metrics: m,
		limiter: lim,
		health:  health.NewServer(),
		now:     time.Now,
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops
// gracefully. It returns nil after a graceful stop.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	unary := []grpc.UnaryServerInterceptor{s.recoveryInterceptor, s.loggingInterceptor, s.rateLimitInterceptor}
	stream := []grpc.StreamServerInterceptor{s.streamRecoveryInterceptor, s.streamLoggingInterceptor, s.streamRateLimitInterceptor}
	if s.metrics != nil {
		unary = append(unary, s.metrics.UnaryServerInterceptor())
		stream = append(stream, s.metrics.StreamServerInterceptor())
	}

	opts := append(pb.ServerOptions(),
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)

	// creates gRPC-server
	srv := grpc.NewServer(opts...)

	// registers services
	pb.RegisterUserServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.UserService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return srv
}
