package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/userdirectory/internal/client/client"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeClient struct {
	addr   string
	closed bool

	createIn client.UserInput
	updateID uint64
	updateIn client.UserInput
	page     int32
	size     int32
	status   pb.UserStatus

	users []*pb.UserResponse
	err   error
	// streamErr ends a stream after every user has been delivered.
	streamErr error
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) CreateUser(_ context.Context, in client.UserInput) (*pb.UserResponse, error) {
	f.createIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.UserResponse{Id: 7, Name: in.Name, Email: in.Email, Age: in.Age, Status: in.Status}, nil
}

func (f *fakeClient) GetUser(_ context.Context, id uint64) (*pb.UserResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.UserResponse{Id: id, Name: "Ana", Email: "ana@x.com"}, nil
}

func (f *fakeClient) UpdateUser(_ context.Context, id uint64, in client.UserInput) (*pb.UserResponse, error) {
	f.updateID, f.updateIn = id, in
	return &pb.UserResponse{Id: id, Name: in.Name, Status: in.Status}, f.err
}

func (f *fakeClient) DeleteUser(context.Context, uint64) (string, error) {
	return "User deleted successfully", f.err
}

func (f *fakeClient) ListUsers(_ context.Context, page, size int32) (*pb.ListUsersResponse, error) {
	f.page, f.size = page, size
	return &pb.ListUsersResponse{Users: f.users, TotalCount: int32(len(f.users)), Page: page, Size: size}, f.err
}

func (f *fakeClient) StreamUsersByStatus(_ context.Context, st pb.UserStatus, fn func(*pb.UserResponse) error) error {
	f.status = st
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if err := fn(u); err != nil {
			return err
		}
	}
	return f.streamErr
}

func run(t *testing.T, f *fakeClient, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	factory := func(addr string) (client.Client, error) {
		f.addr = addr
		return f, nil
	}
	err := Execute(context.Background(), factory, args, &out, &errOut)
	return out.String(), err
}

func age(v int32) *int32 { return &v }

func TestCreate(t *testing.T) {
	f := &fakeClient{}

	out, err := run(t, f, "--addr", "srv:1", "create", "-n", "Ana", "-e", "ana@x.com", "--age", "30", "-s", "inactive")
	require.NoError(t, err)

	assert.Equal(t, "srv:1", f.addr)
	assert.True(t, f.closed)
	assert.Equal(t, "Ana", f.createIn.Name)
	require.NotNil(t, f.createIn.Age)
	assert.Equal(t, int32(30), *f.createIn.Age)
	assert.Equal(t, pb.UserStatus_INACTIVE, f.createIn.Status)
	assert.Contains(t, out, "ana@x.com")
	assert.Contains(t, out, "INACTIVE")
}

func TestCreate_WithoutAgeSendsNoAge(t *testing.T) {
	f := &fakeClient{}

	_, err := run(t, f, "create", "-n", "Ana", "-e", "ana@x.com")
	require.NoError(t, err)

	assert.Nil(t, f.createIn.Age)
	assert.Equal(t, pb.UserStatus_ACTIVE, f.createIn.Status)
}

func TestCreate_BadStatus(t *testing.T) {
	_, err := run(t, &fakeClient{}, "create", "-n", "Ana", "-s", "gone")
	require.Error(t, err)
}

func TestGet_JSONOutput(t *testing.T) {
	out, err := run(t, &fakeClient{}, "-o", "json", "get", "5")
	require.NoError(t, err)

	var u userJSON
	require.NoError(t, json.Unmarshal([]byte(out), &u))
	assert.Equal(t, uint64(5), u.ID)
	assert.Equal(t, "ACTIVE", u.Status)
}

func TestGet_YAMLOutput(t *testing.T) {
	out, err := run(t, &fakeClient{}, "get", "5", "--output", "yaml")
	require.NoError(t, err)

	var u userJSON
	require.NoError(t, yaml.Unmarshal([]byte(out), &u))
	assert.Equal(t, uint64(5), u.ID)
	assert.Equal(t, "ACTIVE", u.Status)
}

func TestGet_InvalidID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		_, err := run(t, &fakeClient{}, "get", "--", arg)
		assert.Error(t, err, arg)
	}
}

func TestUpdate(t *testing.T) {
	f := &fakeClient{}

	_, err := run(t, f, "update", "9", "-n", "Bo", "-e", "bo@x.com", "--age", "0", "-s", "SUSPENDED")
	require.NoError(t, err)

	assert.Equal(t, uint64(9), f.updateID)
	require.NotNil(t, f.updateIn.Age)
	assert.Zero(t, *f.updateIn.Age)
	assert.Equal(t, pb.UserStatus_SUSPENDED, f.updateIn.Status)
}

func TestDelete(t *testing.T) {
	out, err := run(t, &fakeClient{}, "delete", "3")
	require.NoError(t, err)
	assert.Equal(t, "User deleted successfully\n", out)
}

func TestList(t *testing.T) {
	f := &fakeClient{users: []*pb.UserResponse{{Id: 1, Name: "a", Age: age(1)}, {Id: 2, Name: "b"}}}

	out, err := run(t, f, "list", "-p", "2", "--size", "5")
	require.NoError(t, err)

	assert.Equal(t, int32(2), f.page)
	assert.Equal(t, int32(5), f.size)
	assert.Contains(t, out, "page 2, size 5, total 2")
}

func TestList_JSON(t *testing.T) {
	f := &fakeClient{users: []*pb.UserResponse{{Id: 1, Name: "a"}}}

	out, err := run(t, f, "list", "-o", "json")
	require.NoError(t, err)

	var page struct {
		Content       []userJSON `json:"content"`
		TotalElements int32      `json:"totalElements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int32(1), page.TotalElements)
}

func TestStream_TablePrintsRowsAsTheyArrive(t *testing.T) {
	f := &fakeClient{
		users:     []*pb.UserResponse{{Id: 7, Name: "early", Email: "early@x.com", Status: pb.UserStatus_SUSPENDED}},
		streamErr: client.ErrUnavailable,
	}

	out, err := run(t, f, "stream", "suspended")

	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "early@x.com")
	assert.Contains(t, out, "SUSPENDED")
}

func TestStream(t *testing.T) {
	f := &fakeClient{users: []*pb.UserResponse{{Id: 1, Name: "a"}, {Id: 4, Name: "d"}}}

	out, err := run(t, f, "-o", "json", "stream", "inactive")
	require.NoError(t, err)

	assert.Equal(t, pb.UserStatus_INACTIVE, f.status)
	var us []userJSON
	require.NoError(t, json.Unmarshal([]byte(out), &us))
	require.Len(t, us, 2)
	assert.Equal(t, uint64(4), us[1].ID)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := run(t, &fakeClient{}, "-o", "xml", "get", "1")
	require.Error(t, err)
}

func TestFactoryError(t *testing.T) {
	factory := func(string) (client.Client, error) { return nil, errors.New("dial failed") }

	err := Execute(context.Background(), factory, []string{"get", "1"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial failed")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 3, ExitCode(fmt.Errorf("%w: x", client.ErrNotFound)))
	assert.Equal(t, 4, ExitCode(fmt.Errorf("%w: x", client.ErrInvalidArgument)))
	assert.Equal(t, 5, ExitCode(client.ErrUnavailable))
	assert.Equal(t, 1, ExitCode(errors.New("other")))

	_, err := run(t, &fakeClient{err: fmt.Errorf("%w: gone", client.ErrNotFound)}, "get", "1")
	assert.Equal(t, 3, ExitCode(err))
}
