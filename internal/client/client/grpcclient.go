package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UserServiceClient
}

var _ Client = (*GRPCClient)(nil)

// NewUserDirectoryClient creates a client for the server at endpointURL.
// The connection is established lazily on the first call. Extra dial
// options are appended after the defaults.
func NewUserDirectoryClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	dialOpts := append(pb.DialOptions(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) CreateUser(ctx context.Context, in UserInput) (*pb.UserResponse, error) {

	req := &pb.CreateUserRequest{Name: in.Name, Email: in.Email, Age: in.Age, Status: in.Status}

	resp, err := s.client.CreateUser(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp, nil
}

func (s *GRPCClient) GetUser(ctx context.Context, id uint64) (*pb.UserResponse, error) {

	resp, err := s.client.GetUser(ctx, &pb.GetUserRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp, nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, id uint64, in UserInput) (*pb.UserResponse, error) {

	req := &pb.UpdateUserRequest{Id: id, Name: in.Name, Email: in.Email, Age: in.Age, Status: in.Status}

	resp, err := s.client.UpdateUser(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp, nil
}

// DeleteUser returns the server's confirmation message.
func (s *GRPCClient) DeleteUser(ctx context.Context, id uint64) (string, error) {

	resp, err := s.client.DeleteUser(ctx, &pb.DeleteUserRequest{Id: id})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetMessage(), nil
}

func (s *GRPCClient) ListUsers(ctx context.Context, page, size int32) (*pb.ListUsersResponse, error) {

	resp, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{Page: page, Size: size})
	if err != nil {
		return nil, s.mapError(err)
	}

	return resp, nil
}

func (s *GRPCClient) StreamUsersByStatus(ctx context.Context, st pb.UserStatus, fn func(*pb.UserResponse) error) error {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := s.client.StreamUsersByStatus(ctx, &pb.StreamUsersByStatusRequest{Status: st})
	if err != nil {
		return s.mapError(err)
	}

	for {
		u, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return s.mapError(err)
		}
		if err := fn(u); err != nil {
			return err
		}
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrRateLimited, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
