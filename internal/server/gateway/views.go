package gateway

import (
	"fmt"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
)

// userView is the JSON shape of a user record.
type userView struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       *int32 `json:"age"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// userInput is the JSON body accepted by create and update. An empty
// status means ACTIVE.
type userInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Age    *int32 `json:"age"`
	Status string `json:"status"`
}

type pageView struct {
	Content       []userView `json:"content"`
	TotalElements int32      `json:"totalElements"`
	Page          int32      `json:"page"`
	Size          int32      `json:"size"`
}

type deleteView struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toUserView(u *pb.UserResponse) userView {
	return userView{
		ID:        u.GetId(),
		Name:      u.GetName(),
		Email:     u.GetEmail(),
		Age:       u.Age,
		Status:    u.GetStatus().String(),
		CreatedAt: u.GetCreatedAt(),
		UpdatedAt: u.GetUpdatedAt(),
	}
}

func toUserViews(us []*pb.UserResponse) []userView {
	out := make([]userView, 0, len(us))
	for _, u := range us {
		out = append(out, toUserView(u))
	}
	return out
}

func parseStatus(name string) (pb.UserStatus, error) {
	if name == "" {
		return pb.UserStatus_ACTIVE, nil
	}
	s, err := pb.ParseUserStatus(name)
	if err != nil {
		return 0, fmt.Errorf("Invalid status: %s", name)
	}
	return s, nil
}
