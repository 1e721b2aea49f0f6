package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, name string, description *string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string, description *string) (*model.Category, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, name string, description *string) (*model.Category, error) {
	if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
		return nil, errors.New("Kategorie existiert bereits")
	}
	c := model.Category{Name: name, Description: description, Active: true}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, name string, description *string) (*model.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Kategorie nicht gefunden")
	}
	if name != "" {
		c.Name = name
	}
	if description != nil {
		c.Description = description
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *categoryService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}
