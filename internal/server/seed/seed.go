// Package seed loads the sample users into an empty directory at startup.
package seed

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
)

type creator interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	Count() int
}

func age(v int32) *int32 { return &v }

// SampleUsers returns fresh copies of the demo records.
func SampleUsers() []models.User {
	return []models.User{
		{Name: "João Silva", Email: "joao.silva@email.com", Age: age(30), Status: models.StatusActive},
		{Name: "Maria Santos", Email: "maria.santos@email.com", Age: age(25), Status: models.StatusActive},
		{Name: "Pedro Oliveira", Email: "pedro.oliveira@email.com", Age: age(35), Status: models.StatusInactive},
	}
}

// Load creates the sample users through svc unless it already holds data.
// It returns the number of users created.
func Load(ctx context.Context, svc creator, logger logging.Logger) (int, error) {
	if n := svc.Count(); n > 0 {
		logger.Info(ctx, "skipping sample data, directory not empty", "users", n)
		return 0, nil
	}

	created := 0
	for _, u := range SampleUsers() {
		if _, err := svc.Create(ctx, u); err != nil {
			return created, err
		}
		created++
	}

	logger.Info(ctx, "sample data loaded", "users", created)
	return created, nil
}
