package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

type ProjectService interface {
	Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error)
	List(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectService struct {
	repo         repository.ProjectRepository
	customerRepo repository.CustomerRepository
}

func NewProjectService(repo repository.ProjectRepository, customerRepo repository.CustomerRepository) ProjectService {
	return &projectService{repo: repo, customerRepo: customerRepo}
}

func (s *projectService) Create(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	p := model.Project{
		Name:    req.Name,
		Status:  "aktiv",
		Street:  req.Street,
		ZipCode: req.ZipCode,
		City:    req.City,
		Note:    req.Note,
	}
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer_id ungültig: %w", err)
		}
		if _, err := s.customerRepo.FindByID(ctx, cid); err != nil {
			return nil, errors.New("Kunde nicht gefunden")
		}
		p.CustomerID = &cid
	}

	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return projectToResponse(&p), nil
}

func (s *projectService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return projectToResponse(p), nil
}

func (s *projectService) List(ctx context.Context, filter dto.ProjectFilter) (*dto.ProjectListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	projects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		data = append(data, *projectToResponse(&projects[i]))
	}
	return &dto.ProjectListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Projekt nicht gefunden")
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer_id ungültig: %w", err)
		}
		p.CustomerID = &cid
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Street != nil {
		p.Street = *req.Street
	}
	if req.ZipCode != nil {
		p.ZipCode = *req.ZipCode
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.Note != nil {
		p.Note = req.Note
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return projectToResponse(p), nil
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func projectToResponse(p *model.Project) *dto.ProjectResponse {
	var customerID *string
	customerName := ""
	if p.CustomerID != nil {
		cid := p.CustomerID.String()
		customerID = &cid
	}
	if p.Customer != nil {
		customerName = p.Customer.Name
	}
	return &dto.ProjectResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		CustomerID:   customerID,
		CustomerName: customerName,
		Status:       p.Status,
		Street:       p.Street,
		ZipCode:      p.ZipCode,
		City:         p.City,
		Note:         p.Note,
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
