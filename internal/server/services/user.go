// Package services contains server-side business logic. This file implements
// UserService, which validates user records and drives the record store.
package services

import (
	"context"

	"github.com/dmitrijs2005/userdirectory/internal/common"
	"github.com/dmitrijs2005/userdirectory/internal/logging"
	"github.com/dmitrijs2005/userdirectory/internal/server/models"
	"github.com/dmitrijs2005/userdirectory/internal/server/repositories/users"
)

// UserService implements the user directory operations on top of a
// users.Repository.
//
// Validation failures match common.ErrorInvalidData, unknown ids match
// common.ErrorNotFound.
type UserService struct {
	repo   users.Repository
	logger logging.Logger
}

// NewUserService constructs a UserService backed by repo.
func NewUserService(repo users.Repository, logger logging.Logger) *UserService {
	return &UserService{repo: repo, logger: logger.With("module", "services/users")}
}

// Create validates u and stores it under a freshly allocated id. Any id
// on the input is ignored.
func (s *UserService) Create(ctx context.Context, u models.User) (models.User, error) {
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	u.ID = 0
	saved := s.repo.Save(u)

	s.logger.Info(ctx, "user created", "id", saved.ID, "status", saved.Status.String())
	return saved, nil
}

func (s *UserService) Get(ctx context.Context, id uint64) (models.User, error) {
	u, ok := s.repo.FindByID(id)
	if !ok {
		return models.User{}, common.NewNotFoundError(id)
	}
	return u, nil
}

// Update replaces the mutable fields of an existing record. The existence
// check runs before validation, so an invalid payload for an unknown id
// reports not found.
func (s *UserService) Update(ctx context.Context, u models.User) (models.User, error) {
	if !s.repo.ExistsByID(u.ID) {
		return models.User{}, common.NewNotFoundError(u.ID)
	}

	if err := u.Validate(); err != nil {
		return models.User{}, err
	}

	updated, ok := s.repo.Replace(u)
	if !ok {
		// deleted between the check and the write
		return models.User{}, common.NewNotFoundError(u.ID)
	}

	s.logger.Info(ctx, "user updated", "id", updated.ID)
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	if !s.repo.ExistsByID(id) {
		return common.NewNotFoundError(id)
	}

	if !s.repo.DeleteByID(id) {
		return common.NewNotFoundError(id)
	}

	s.logger.Info(ctx, "user deleted", "id", id)
	return nil
}

// List returns one page of users in id order together with the total
// number of stored users.
func (s *UserService) List(ctx context.Context, page, size int) ([]models.User, int, error) {
	if page < 0 || size <= 0 {
		return nil, 0, common.NewInvalidDataError("Invalid pagination parameters")
	}

	found := s.repo.FindPaginated(page, size)
	total := s.repo.Count()

	s.logger.Debug(ctx, "users listed", "page", page, "size", size, "returned", len(found), "total", total)
	return found, total, nil
}

// ListByStatus returns every user with the given status in id order.
func (s *UserService) ListByStatus(ctx context.Context, status models.Status) ([]models.User, error) {
	found := s.repo.FindByStatus(status)
	s.logger.Debug(ctx, "users listed by status", "status", status.String(), "returned", len(found))
	return found, nil
}

// Count returns the number of stored users.
func (s *UserService) Count() int {
	return s.repo.Count()
}
