package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

type OfferService interface {
	Create(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error)
	List(ctx context.Context, filter dto.OfferFilter) (*dto.OfferListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateOfferStatusRequest) error
}

type offerService struct {
	repo         repository.OfferRepository
	customerRepo repository.CustomerRepository
}

func NewOfferService(repo repository.OfferRepository, customerRepo repository.CustomerRepository) OfferService {
	return &offerService{repo: repo, customerRepo: customerRepo}
}

var defaultTaxRate = decimal.NewFromInt(19)

func (s *offerService) Create(ctx context.Context, req dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("customer_id ungültig: %w", err)
	}
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		return nil, errors.New("Kunde nicht gefunden")
	}

	offer := model.Offer{
		CustomerID: customerID,
		Status:     model.OfferDraft,
		TaxRate:    defaultTaxRate,
	}
	if req.TaxRate != nil {
		offer.TaxRate = *req.TaxRate
	}
	if req.ProjectID != nil {
		pid, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("project_id ungültig: %w", err)
		}
		offer.ProjectID = &pid
	}
	if req.ValidUntil != nil {
		t, err := time.Parse("2006-01-02", *req.ValidUntil)
		if err != nil {
			return nil, fmt.Errorf("valid_until ungültig: %w", err)
		}
		offer.ValidUntil = &t
	}

	// Line totals and offer totals are computed server-side; client
	// supplied sums are never trusted.
	net := decimal.Zero
	for _, item := range req.Items {
		unit := item.Unit
		if unit == "" {
			unit = "Stück"
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		net = net.Add(lineTotal)
		offer.Items = append(offer.Items, model.OfferItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        unit,
			UnitPrice:   item.UnitPrice,
			LineTotal:   lineTotal,
		})
	}
	offer.Net = net
	taxFactor := offer.TaxRate.Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1))
	offer.Gross = net.Mul(taxFactor).Round(2)

	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}
	offer.Number = number

	if err := s.repo.Create(ctx, &offer); err != nil {
		return nil, err
	}
	return offerToResponse(&offer), nil
}

func (s *offerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OfferResponse, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return offerToResponse(o), nil
}

func (s *offerService) List(ctx context.Context, filter dto.OfferFilter) (*dto.OfferListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	offers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		data = append(data, *offerToResponse(&offers[i]))
	}
	return &dto.OfferListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *offerService) UpdateStatus(ctx context.Context, id uuid.UUID, req dto.UpdateOfferStatusRequest) error {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return errors.New("Angebot nicht gefunden")
	}
	// Accepted and rejected offers are final.
	if o.Status == model.OfferAccepted || o.Status == model.OfferRejected {
		return errors.New("Angebot ist bereits abgeschlossen")
	}
	return s.repo.UpdateStatus(ctx, id, req.Status)
}

func offerToResponse(o *model.Offer) *dto.OfferResponse {
	items := make([]dto.OfferItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OfferItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	var projectID *string
	if o.ProjectID != nil {
		pid := o.ProjectID.String()
		projectID = &pid
	}
	var validUntil *string
	if o.ValidUntil != nil {
		d := o.ValidUntil.Format("2006-01-02")
		validUntil = &d
	}
	return &dto.OfferResponse{
		ID:         o.ID.String(),
		Number:     o.Number,
		CustomerID: o.CustomerID.String(),
		ProjectID:  projectID,
		Status:     o.Status,
		ValidUntil: validUntil,
		Net:        o.Net,
		TaxRate:    o.TaxRate,
		Gross:      o.Gross,
		Items:      items,
		CreatedAt:  o.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
