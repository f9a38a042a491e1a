// Package mapper translates between the gRPC wire messages and the domain
// records. It holds no state.
package mapper

import (
	"time"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

// TimestampLayout is a local ISO-8601 date-time with the fractional
// seconds trimmed, e.g. 2025-03-01T14:07:09.123.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

func UserFromCreateRequest(req *pb.CreateUserRequest) models.User {
	return models.User{
		Name:   req.GetName(),
		Email:  req.GetEmail(),
		Age:    copyAge(req.Age),
		Status: StatusFromWire(req.GetStatus()),
	}
}

func UserFromUpdateRequest(req *pb.UpdateUserRequest) models.User {
	return models.User{
		ID:     req.GetId(),
		Name:   req.GetName(),
		Email:  req.GetEmail(),
		Age:    copyAge(req.Age),
		Status: StatusFromWire(req.GetStatus()),
	}
}

func UserToResponse(u models.User) *pb.UserResponse {
	return &pb.UserResponse{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Age:       copyAge(u.Age),
		Status:    StatusToWire(u.Status),
		CreatedAt: FormatTimestamp(u.CreatedAt),
		UpdatedAt: FormatTimestamp(u.UpdatedAt),
	}
}

func UsersToResponses(users []models.User) []*pb.UserResponse {
	out := make([]*pb.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserToResponse(u))
	}
	return out
}

// StatusFromWire maps unknown wire values to StatusActive.
func StatusFromWire(s pb.UserStatus) models.Status {
	switch s {
	case pb.UserStatus_INACTIVE:
		return models.StatusInactive
	case pb.UserStatus_SUSPENDED:
		return models.StatusSuspended
	default:
		return models.StatusActive
	}
}

func StatusToWire(s models.Status) pb.UserStatus {
	switch s {
	case models.StatusInactive:
		return pb.UserStatus_INACTIVE
	case models.StatusSuspended:
		return pb.UserStatus_SUSPENDED
	default:
		return pb.UserStatus_ACTIVE
	}
}

// FormatTimestamp renders t in local time; the zero time renders as "".
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(TimestampLayout)
}

func copyAge(a *int32) *int32 {
	if a == nil {
		return nil
	}
	v := *a
	return &v
}
