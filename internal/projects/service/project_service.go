package service

import (
	"context"
	"strings"

	"github.com/projhub/projhub-backend/internal/projects/domain"
)

// Repository is the persistence surface the service needs.
type Repository interface {
	Create(ctx context.Context, name, description string) (*domain.Project, error)
	Update(ctx context.Context, id int64, name, description string) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, keyword string) ([]domain.Project, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// Create validates and inserts a new project. Both fields must be non-empty
// after trimming.
func (s *ProjectService) Create(ctx context.Context, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, domain.ErrEmptyField
	}
	return s.repo.Create(ctx, name, description)
}

// Update rewrites a project's name and description.
func (s *ProjectService) Update(ctx context.Context, id int64, name, description string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, domain.ErrEmptyField
	}
	return s.repo.Update(ctx, id, name, description)
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// List returns projects, optionally narrowed by a keyword. The keyword is
// trimmed; a blank search behaves like no search.
func (s *ProjectService) List(ctx context.Context, keyword string) ([]domain.Project, error) {
	return s.repo.List(ctx, strings.TrimSpace(keyword))
}
