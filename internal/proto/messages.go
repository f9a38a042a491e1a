// Package proto holds the wire contract of the user directory service:
// request/response messages, the UserService descriptor with its client and
// server bindings, and the gRPC codec that encodes the messages.
//
// userdirectory.proto in this directory is the canonical schema; the Go
// types below mirror it field for field.
package proto

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// UserStatus mirrors the userdirectory.v1.UserStatus enum.
type UserStatus int32

const (
	UserStatus_ACTIVE    UserStatus = 0
	UserStatus_INACTIVE  UserStatus = 1
	UserStatus_SUSPENDED UserStatus = 2
)

var userStatusName = map[UserStatus]string{
	UserStatus_ACTIVE:    "ACTIVE",
	UserStatus_INACTIVE:  "INACTIVE",
	UserStatus_SUSPENDED: "SUSPENDED",
}

func (s UserStatus) String() string {
	if name, ok := userStatusName[s]; ok {
		return name
	}
	return fmt.Sprintf("UserStatus(%d)", int32(s))
}

// ParseUserStatus accepts the enum names case-insensitively.
func ParseUserStatus(name string) (UserStatus, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for s, sn := range userStatusName {
		if sn == n {
			return s, nil
		}
	}
	return UserStatus_ACTIVE, fmt.Errorf("unknown user status %q", name)
}

type CreateUserRequest struct {
	Name   string
	Email  string
	Age    *int32
	Status UserStatus
}

func (m *CreateUserRequest) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *CreateUserRequest) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}

func (m *CreateUserRequest) GetAge() int32 {
	if m == nil || m.Age == nil {
		return 0
	}
	return *m.Age
}

func (m *CreateUserRequest) GetStatus() UserStatus {
	if m == nil {
		return UserStatus_ACTIVE
	}
	return m.Status
}

func (m *CreateUserRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendString(b, 1, m.Name)
	b = appendString(b, 2, m.Email)
	b = appendOptionalInt32(b, 3, m.Age)
	return appendStatus(b, 4, m.Status)
}

func (m *CreateUserRequest) unmarshalWire(b []byte) error {
	*m = CreateUserRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(num, typ, b, &m.Name)
		case 2:
			return consumeString(num, typ, b, &m.Email)
		case 3:
			return consumeOptionalInt32(num, typ, b, &m.Age)
		case 4:
			return consumeStatus(num, typ, b, &m.Status)
		}
		return skipField(num, typ, b)
	})
}

type GetUserRequest struct {
	Id uint64
}

func (m *GetUserRequest) GetId() uint64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *GetUserRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendUint64(b, 1, m.Id)
}

func (m *GetUserRequest) unmarshalWire(b []byte) error {
	*m = GetUserRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeUint64(num, typ, b, &m.Id)
		}
		return skipField(num, typ, b)
	})
}

type UpdateUserRequest struct {
	Id     uint64
	Name   string
	Email  string
	Age    *int32
	Status UserStatus
}

func (m *UpdateUserRequest) GetId() uint64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *UpdateUserRequest) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *UpdateUserRequest) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}

func (m *UpdateUserRequest) GetAge() int32 {
	if m == nil || m.Age == nil {
		return 0
	}
	return *m.Age
}

func (m *UpdateUserRequest) GetStatus() UserStatus {
	if m == nil {
		return UserStatus_ACTIVE
	}
	return m.Status
}

func (m *UpdateUserRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendUint64(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendOptionalInt32(b, 4, m.Age)
	return appendStatus(b, 5, m.Status)
}

func (m *UpdateUserRequest) unmarshalWire(b []byte) error {
	*m = UpdateUserRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(num, typ, b, &m.Id)
		case 2:
			return consumeString(num, typ, b, &m.Name)
		case 3:
			return consumeString(num, typ, b, &m.Email)
		case 4:
			return consumeOptionalInt32(num, typ, b, &m.Age)
		case 5:
			return consumeStatus(num, typ, b, &m.Status)
		}
		return skipField(num, typ, b)
	})
}

type DeleteUserRequest struct {
	Id uint64
}

func (m *DeleteUserRequest) GetId() uint64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *DeleteUserRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendUint64(b, 1, m.Id)
}

func (m *DeleteUserRequest) unmarshalWire(b []byte) error {
	*m = DeleteUserRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeUint64(num, typ, b, &m.Id)
		}
		return skipField(num, typ, b)
	})
}

type DeleteUserResponse struct {
	Success bool
	Message string
}

func (m *DeleteUserResponse) GetSuccess() bool {
	if m == nil {
		return false
	}
	return m.Success
}

func (m *DeleteUserResponse) GetMessage() string {
	if m == nil {
		return ""
	}
	return m.Message
}

func (m *DeleteUserResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendBool(b, 1, m.Success)
	return appendString(b, 2, m.Message)
}

func (m *DeleteUserResponse) unmarshalWire(b []byte) error {
	*m = DeleteUserResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeBool(num, typ, b, &m.Success)
		case 2:
			return consumeString(num, typ, b, &m.Message)
		}
		return skipField(num, typ, b)
	})
}

type ListUsersRequest struct {
	Page int32
	Size int32
}

func (m *ListUsersRequest) GetPage() int32 {
	if m == nil {
		return 0
	}
	return m.Page
}

func (m *ListUsersRequest) GetSize() int32 {
	if m == nil {
		return 0
	}
	return m.Size
}

func (m *ListUsersRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt32(b, 1, m.Page)
	return appendInt32(b, 2, m.Size)
}

func (m *ListUsersRequest) unmarshalWire(b []byte) error {
	*m = ListUsersRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt32(num, typ, b, &m.Page)
		case 2:
			return consumeInt32(num, typ, b, &m.Size)
		}
		return skipField(num, typ, b)
	})
}

type ListUsersResponse struct {
	Users      []*UserResponse
	TotalCount int32
	Page       int32
	Size       int32
}

func (m *ListUsersResponse) GetUsers() []*UserResponse {
	if m == nil {
		return nil
	}
	return m.Users
}

func (m *ListUsersResponse) GetTotalCount() int32 {
	if m == nil {
		return 0
	}
	return m.TotalCount
}

func (m *ListUsersResponse) GetPage() int32 {
	if m == nil {
		return 0
	}
	return m.Page
}

func (m *ListUsersResponse) GetSize() int32 {
	if m == nil {
		return 0
	}
	return m.Size
}

func (m *ListUsersResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	for _, u := range m.Users {
		b = appendMessage(b, 1, u)
	}
	b = appendInt32(b, 2, m.TotalCount)
	b = appendInt32(b, 3, m.Page)
	return appendInt32(b, 4, m.Size)
}

func (m *ListUsersResponse) unmarshalWire(b []byte) error {
	*m = ListUsersResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			u := &UserResponse{}
			n, err := consumeMessage(num, typ, b, u)
			if err == nil && typ == protowire.BytesType {
				m.Users = append(m.Users, u)
			}
			return n, err
		case 2:
			return consumeInt32(num, typ, b, &m.TotalCount)
		case 3:
			return consumeInt32(num, typ, b, &m.Page)
		case 4:
			return consumeInt32(num, typ, b, &m.Size)
		}
		return skipField(num, typ, b)
	})
}

type StreamUsersByStatusRequest struct {
	Status UserStatus
}

func (m *StreamUsersByStatusRequest) GetStatus() UserStatus {
	if m == nil {
		return UserStatus_ACTIVE
	}
	return m.Status
}

func (m *StreamUsersByStatusRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendStatus(b, 1, m.Status)
}

func (m *StreamUsersByStatusRequest) unmarshalWire(b []byte) error {
	*m = StreamUsersByStatusRequest{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeStatus(num, typ, b, &m.Status)
		}
		return skipField(num, typ, b)
	})
}

// UserResponse is the wire shape of a stored user record.
type UserResponse struct {
	Id        uint64
	Name      string
	Email     string
	Age       *int32
	Status    UserStatus
	CreatedAt string
	UpdatedAt string
}

func (m *UserResponse) GetId() uint64 {
	if m == nil {
		return 0
	}
	return m.Id
}

func (m *UserResponse) GetName() string {
	if m == nil {
		return ""
	}
	return m.Name
}

func (m *UserResponse) GetEmail() string {
	if m == nil {
		return ""
	}
	return m.Email
}

func (m *UserResponse) GetAge() int32 {
	if m == nil || m.Age == nil {
		return 0
	}
	return *m.Age
}

func (m *UserResponse) GetStatus() UserStatus {
	if m == nil {
		return UserStatus_ACTIVE
	}
	return m.Status
}

func (m *UserResponse) GetCreatedAt() string {
	if m == nil {
		return ""
	}
	return m.CreatedAt
}

func (m *UserResponse) GetUpdatedAt() string {
	if m == nil {
		return ""
	}
	return m.UpdatedAt
}

func (m *UserResponse) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendUint64(b, 1, m.Id)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.Email)
	b = appendOptionalInt32(b, 4, m.Age)
	b = appendStatus(b, 5, m.Status)
	b = appendString(b, 6, m.CreatedAt)
	return appendString(b, 7, m.UpdatedAt)
}

func (m *UserResponse) unmarshalWire(b []byte) error {
	*m = UserResponse{}
	return walkFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeUint64(num, typ, b, &m.Id)
		case 2:
			return consumeString(num, typ, b, &m.Name)
		case 3:
			return consumeString(num, typ, b, &m.Email)
		case 4:
			return consumeOptionalInt32(num, typ, b, &m.Age)
		case 5:
			return consumeStatus(num, typ, b, &m.Status)
		case 6:
			return consumeString(num, typ, b, &m.CreatedAt)
		case 7:
			return consumeString(num, typ, b, &m.UpdatedAt)
		}
		return skipField(num, typ, b)
	})
}
