package client

import (
	"context"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
)

// UserInput carries the caller-supplied fields of create and update.
type UserInput struct {
	Name   string
	Email  string
	Age    *int32
	Status pb.UserStatus
}

type Client interface {
	Close() error
	CreateUser(ctx context.Context, in UserInput) (*pb.UserResponse, error)
	GetUser(ctx context.Context, id uint64) (*pb.UserResponse, error)
	UpdateUser(ctx context.Context, id uint64, in UserInput) (*pb.UserResponse, error)
	DeleteUser(ctx context.Context, id uint64) (string, error)
	ListUsers(ctx context.Context, page, size int32) (*pb.ListUsersResponse, error)
	// StreamUsersByStatus calls fn for every streamed user in order and
	// stops at the first error fn returns.
	StreamUsersByStatus(ctx context.Context, status pb.UserStatus, fn func(*pb.UserResponse) error) error
}
