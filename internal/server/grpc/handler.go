package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/mapper"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultPageSize      = 10
	internalErrorMessage = "Internal server error"
	deletedMessage       = "User deleted successfully"
)

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.UserResponse, error) {

	created, err := s.users.Create(ctx, mapper.UserFromCreateRequest(req))
	if err != nil {
		return nil, s.statusError(ctx, "create user", err)
	}

	return mapper.UserToResponse(created), nil
}

func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.UserResponse, error) {

	u, err := s.users.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.statusError(ctx, "get user", err)
	}

	return mapper.UserToResponse(u), nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UserResponse, error) {

	updated, err := s.users.Update(ctx, mapper.UserFromUpdateRequest(req))
	if err != nil {
		return nil, s.statusError(ctx, "update user", err)
	}

	return mapper.UserToResponse(updated), nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {

	if err := s.users.Delete(ctx, req.GetId()); err != nil {
		return nil, s.statusError(ctx, "delete user", err)
	}

	return &pb.DeleteUserResponse{Success: true, Message: deletedMessage}, nil
}

// ListUsers normalizes its input instead of rejecting it: a negative page
// becomes 0 and a non-positive size becomes the default page size. The
// response echoes the effective values.
func (s *GRPCServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {

	page := max(req.GetPage(), 0)
	size := req.GetSize()
	if size <= 0 {
		size = defaultPageSize
	}

	found, total, err := s.users.List(ctx, int(page), int(size))
	if err != nil {
		return nil, s.statusError(ctx, "list users", err)
	}

	return &pb.ListUsersResponse{
		Users:      mapper.UsersToResponses(found),
		TotalCount: int32(total),
		Page:       page,
		Size:       size,
	}, nil
}

// StreamUsersByStatus sends one message per matching user from a snapshot
// taken when the call starts. It stops early once the caller goes away.
func (s *GRPCServer) StreamUsersByStatus(req *pb.StreamUsersByStatusRequest, stream pb.UserService_StreamUsersByStatusServer) error {
	ctx := stream.Context()

	found, err := s.users.ListByStatus(ctx, mapper.StatusFromWire(req.GetStatus()))
	if err != nil {
		return s.statusError(ctx, "stream users", err)
	}

	for _, u := range found {
		if err := ctx.Err(); err != nil {
			return status.FromContextError(err).Err()
		}
		if err := stream.Send(mapper.UserToResponse(u)); err != nil {
			return err
		}
		s.metrics.UserStreamed()
	}

	s.loggerFor(ctx).Debug(ctx, "stream completed", "status", req.GetStatus().String(), "sent", len(found))
	return nil
}

// statusError maps service errors onto gRPC statuses. Not-found and
// validation messages reach the caller verbatim; anything unexpected is
// logged and reported as a generic internal error.
func (s *GRPCServer) statusError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorInvalidData):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}

	s.loggerFor(ctx).Error(ctx, op+" failed", "error", err)
	return status.Error(codes.Internal, internalErrorMessage)
}
