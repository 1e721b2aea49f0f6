package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	List(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := model.Customer{
		Name:    req.Name,
		Contact: req.Contact,
		Email:   req.Email,
		Phone:   req.Phone,
		Street:  req.Street,
		ZipCode: req.ZipCode,
		City:    req.City,
		Note:    req.Note,
		Active:  true,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return customerToResponse(&c), nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) List(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	customers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		data = append(data, *customerToResponse(&customers[i]))
	}
	return &dto.CustomerListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Kunde nicht gefunden")
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Contact != nil {
		c.Contact = *req.Contact
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.Street != nil {
		c.Street = *req.Street
	}
	if req.ZipCode != nil {
		c.ZipCode = *req.ZipCode
	}
	if req.City != nil {
		c.City = *req.City
	}
	if req.Note != nil {
		c.Note = req.Note
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func (s *customerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Contact:   c.Contact,
		Email:     c.Email,
		Phone:     c.Phone,
		Street:    c.Street,
		ZipCode:   c.ZipCode,
		City:      c.City,
		Note:      c.Note,
		Active:    c.Active,
		CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
