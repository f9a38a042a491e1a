package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
	"github.com/dmitrijs2005/userdirectory/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleUsers_AreValid(t *testing.T) {
	for _, u := range SampleUsers() {
		assert.NoError(t, u.Validate(), u.Name)
	}
}

func TestLoad_EmptyDirectory(t *testing.T) {
	svc := services.NewUserService(users.NewMemoryRepository(), logging.Nop{})
	ctx := context.Background()

	n, err := Load(ctx, svc, logging.Nop{})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	inactive, err := svc.ListByStatus(ctx, models.StatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	assert.Equal(t, "Pedro Oliveira", inactive[0].Name)

	first, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "João Silva", first.Name)
}

func TestLoad_SkipsWhenNotEmpty(t *testing.T) {
	svc := services.NewUserService(users.NewMemoryRepository(), logging.Nop{})
	ctx := context.Background()

	_, err := Load(ctx, svc, logging.Nop{})
	require.NoError(t, err)

	n, err := Load(ctx, svc, logging.Nop{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 3, svc.Count())
}

type failingCreator struct{ calls int }

func (f *failingCreator) Create(context.Context, models.User) (models.User, error) {
	f.calls++
	if f.calls == 2 {
		return models.User{}, errors.New("nope")
	}
	return models.User{}, nil
}
func (f *failingCreator) Count() int { return 0 }

func TestLoad_StopsOnError(t *testing.T) {
	n, err := Load(context.Background(), &failingCreator{}, logging.Nop{})
	require.Error(t, err)
	assert.Equal(t, 1, n)
}
