package mapper

import (
	"testing"
	"time"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func age(v int32) *int32 { return &v }

func TestUserFromCreateRequest(t *testing.T) {
	req := &pb.CreateUserRequest{Name: "Ana", Email: "ana@x.com", Age: age(30), Status: pb.UserStatus_INACTIVE}

	got := UserFromCreateRequest(req)

	want := models.User{Name: "Ana", Email: "ana@x.com", Age: age(30), Status: models.StatusInactive}
	assert.Empty(t, cmp.Diff(want, got))

	*req.Age = 1
	assert.Equal(t, int32(30), *got.Age, "age must not alias the request")
}

func TestUserFromCreateRequest_AbsentAgeStaysAbsent(t *testing.T) {
	got := UserFromCreateRequest(&pb.CreateUserRequest{Name: "Ana"})
	assert.Nil(t, got.Age)
	assert.Zero(t, got.ID)
}

func TestUserFromUpdateRequest_KeepsID(t *testing.T) {
	got := UserFromUpdateRequest(&pb.UpdateUserRequest{Id: 12, Name: "Bo", Email: "bo@x.com", Age: age(5), Status: pb.UserStatus_SUSPENDED})

	assert.Equal(t, uint64(12), got.ID)
	assert.Equal(t, models.StatusSuspended, got.Status)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestStatusFromWire_UnknownDefaultsToActive(t *testing.T) {
	assert.Equal(t, models.StatusActive, StatusFromWire(pb.UserStatus(42)))
	assert.Equal(t, models.StatusActive, StatusFromWire(pb.UserStatus(-1)))
	assert.Equal(t, models.StatusActive, StatusFromWire(pb.UserStatus_ACTIVE))
	assert.Equal(t, models.StatusInactive, StatusFromWire(pb.UserStatus_INACTIVE))
}

func TestStatus_RoundTrip(t *testing.T) {
	for _, s := range []models.Status{models.StatusActive, models.StatusInactive, models.StatusSuspended} {
		assert.Equal(t, s, StatusFromWire(StatusToWire(s)))
	}
}

func TestUserToResponse(t *testing.T) {
	created := time.Date(2025, 3, 1, 14, 7, 9, 0, time.Local)
	updated := created.Add(1500 * time.Millisecond)
	u := models.User{
		ID: 3, Name: "Ana", Email: "ana@x.com", Age: age(30), Status: models.StatusSuspended,
		CreatedAt: created, UpdatedAt: updated,
	}

	got := UserToResponse(u)

	require.NotNil(t, got)
	assert.Equal(t, uint64(3), got.GetId())
	assert.Equal(t, int32(30), got.GetAge())
	assert.Equal(t, pb.UserStatus_SUSPENDED, got.GetStatus())
	assert.Equal(t, "2025-03-01T14:07:09", got.GetCreatedAt())
	assert.Equal(t, "2025-03-01T14:07:10.5", got.GetUpdatedAt())
}

func TestUserToResponse_ZeroTimestampsAreEmpty(t *testing.T) {
	got := UserToResponse(models.User{ID: 1, Name: "x"})
	assert.Empty(t, got.GetCreatedAt())
	assert.Empty(t, got.GetUpdatedAt())
	assert.Nil(t, got.Age)
}

func TestFormatTimestamp_UsesLocalTime(t *testing.T) {
	ts := time.Date(2025, 6, 30, 23, 59, 59, 123000000, time.UTC)
	assert.Equal(t, ts.Local().Format("2006-01-02T15:04:05")+".123", FormatTimestamp(ts))
}

func TestUsersToResponses(t *testing.T) {
	out := UsersToResponses([]models.User{{ID: 1}, {ID: 2}})
	require.Len(t, out, 2)
	assert.Equal(t, uint64(2), out[1].GetId())

	assert.NotNil(t, UsersToResponses(nil))
}
