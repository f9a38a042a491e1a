package grpc

import (
	"context"
	"path"
	"runtime/debug"
	"time"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/ratelimiter"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "x-request-id"
	// ForwardedForHeader carries the original client address of relayed calls.
	ForwardedForHeader = "x-forwarded-for"
)

// requestIDFromContext returns the id assigned by the logging interceptor.
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (s *GRPCServer) loggerFor(ctx context.Context) logging.Logger {
	if id := requestIDFromContext(ctx); id != "" {
		return s.logger.With("request_id", id)
	}
	return s.logger
}

// withRequestID reuses the caller's x-request-id or generates a new one,
// stores it in the context and echoes it back as a response header.
func withRequestID(ctx context.Context) context.Context {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDHeader); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	// fails only outside a real RPC, e.g. in unit tests
	_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, id))

	return context.WithValue(ctx, requestIDKey, id)
}

// peerKey identifies the caller for rate limiting. Calls relayed by the
// local gateway are keyed by the client address it forwards.
func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok {
		return ""
	}
	md, _ := metadata.FromIncomingContext(ctx)
	return ratelimiter.ClientKey(p.Addr, md.Get(ForwardedForHeader))
}

func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.loggerFor(ctx).Error(ctx, "panic in handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, internalErrorMessage)
		}
	}()
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx = withRequestID(ctx)
	started := s.now()

	resp, err := handler(ctx, req)

	s.logCall(ctx, info.FullMethod, started, err)
	return resp, err
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if !s.limiter.Allow(peerKey(ctx), s.now()) {
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return handler(ctx, req)
}

func (s *GRPCServer) logCall(ctx context.Context, method string, started time.Time, err error) {
	l := s.loggerFor(ctx)
	args := []any{"method", path.Base(method), "code", status.Code(err).String(), "duration", s.now().Sub(started)}
	if err != nil {
		l.Warn(ctx, "rpc failed", append(args, "error", status.Convert(err).Message())...)
		return
	}
	l.Info(ctx, "rpc handled", args...)
}

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *serverStream) Context() context.Context { return w.ctx }

func (s *GRPCServer) streamRecoveryInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx := ss.Context()
			s.loggerFor(ctx).Error(ctx, "panic in stream handler", "method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
			err = status.Error(codes.Internal, internalErrorMessage)
		}
	}()
	return handler(srv, ss)
}

func (s *GRPCServer) streamLoggingInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := withRequestID(ss.Context())
	started := s.now()

	err := handler(srv, &serverStream{ServerStream: ss, ctx: ctx})

	s.logCall(ctx, info.FullMethod, started, err)
	return err
}

func (s *GRPCServer) streamRateLimitInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if !s.limiter.Allow(peerKey(ss.Context()), s.now()) {
		return status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return handler(srv, ss)
}
