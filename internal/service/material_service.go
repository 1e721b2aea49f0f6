package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

// MaterialService covers catalog maintenance, stock corrections and the
// order lifecycle that the ordering screen derives its rows from.
type MaterialService interface {
	Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies a signed correction and records it as a booking,
	// so the ledger stays the single source of movement history.
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.MaterialResponse, error)

	// Order lifecycle: none → offen → bestellt → received (cleared).
	RequestOrder(ctx context.Context, id uuid.UUID, req dto.RequestOrderRequest) (*dto.MaterialResponse, error)
	PlaceOrder(ctx context.Context, id uuid.UUID, req dto.PlaceOrderRequest) (*dto.MaterialResponse, error)
	ReceiveOrder(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
	CancelOrder(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error)
}

type materialService struct {
	repo        repository.MaterialRepository
	bookingRepo repository.BookingRepository
}

func NewMaterialService(repo repository.MaterialRepository, bookingRepo repository.BookingRepository) MaterialService {
	return &materialService{repo: repo, bookingRepo: bookingRepo}
}

func (s *materialService) Create(ctx context.Context, req dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	m := model.Material{
		MaterialID:           req.MaterialID,
		Description:          req.Description,
		Manufacturer:         req.Manufacturer,
		Unit:                 req.Unit,
		ItemsPerUnit:         req.ItemsPerUnit,
		Stock:                req.Stock,
		HeatStock:            req.HeatStock,
		OrderQuantity:        req.OrderQuantity,
		ExcludeFromAutoOrder: req.ExcludeFromAutoOrder,
		Active:               true,
	}
	if m.Unit == "" {
		m.Unit = "Stück"
	}
	if m.ItemsPerUnit < 1 {
		m.ItemsPerUnit = 1
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("category_id ungültig: %w", err)
		}
		m.CategoryID = &cid
	}
	if req.Price != nil {
		m.Price = *req.Price
	} else {
		m.Price = decimal.Zero
	}

	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return materialToResponse(&m), nil
}

func (s *materialService) GetByID(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) List(ctx context.Context, filter dto.MaterialFilter) (*dto.MaterialListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	materials, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.MaterialResponse, 0, len(materials))
	for i := range materials {
		data = append(data, *materialToResponse(&materials[i]))
	}
	return &dto.MaterialListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *materialService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}

	if req.Description != nil {
		m.Description = *req.Description
	}
	if req.Manufacturer != nil {
		m.Manufacturer = *req.Manufacturer
	}
	if req.Unit != nil {
		m.Unit = *req.Unit
	}
	if req.ItemsPerUnit != nil {
		m.ItemsPerUnit = *req.ItemsPerUnit
	}
	if req.CategoryID != nil {
		cid, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("category_id ungültig: %w", err)
		}
		m.CategoryID = &cid
	}
	if req.HeatStock != nil {
		m.HeatStock = *req.HeatStock
	}
	if req.OrderQuantity != nil {
		m.OrderQuantity = *req.OrderQuantity
	}
	if req.ExcludeFromAutoOrder != nil {
		m.ExcludeFromAutoOrder = *req.ExcludeFromAutoOrder
	}
	if req.Price != nil {
		m.Price = *req.Price
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// ── Stock correction ─────────────────────────────────────────────────────────

func (s *materialService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}

	bookingType := model.BookingIn
	qty := req.Delta
	if req.Delta < 0 {
		bookingType = model.BookingOut
		qty = -req.Delta
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateStockTx(tx, id, req.Delta); err != nil {
			return err
		}
		note := req.Note
		if note == "" {
			note = "Bestandskorrektur"
		}
		booking := &model.Booking{
			Type: bookingType,
			Note: note,
			Lines: []model.BookingLine{{
				MaterialRef: m.ID.String(),
				Quantity:    qty,
				IsManual:    true,
			}},
		}
		return s.bookingRepo.CreateTx(tx, booking)
	})
	if txErr != nil {
		return nil, txErr
	}

	m.Stock += req.Delta
	return materialToResponse(m), nil
}

// ── Order lifecycle ──────────────────────────────────────────────────────────

func (s *materialService) RequestOrder(ctx context.Context, id uuid.UUID, req dto.RequestOrderRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}
	if m.OrderStatus == model.OrderStatusPlaced {
		return nil, errors.New("Material ist bereits bestellt")
	}

	qty := req.Quantity
	if qty < 1 {
		qty = 1
	}
	m.OrderStatus = model.OrderStatusRequested
	m.OrderedQuantity = qty
	m.OrderDate = nil

	if err := s.persistOrderFields(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) PlaceOrder(ctx context.Context, id uuid.UUID, req dto.PlaceOrderRequest) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}

	now := time.Now().UTC()
	m.OrderStatus = model.OrderStatusPlaced
	m.OrderedQuantity = req.Quantity
	m.OrderDate = &now

	if err := s.persistOrderFields(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

// ReceiveOrder books the ordered quantity into stock and clears the
// order fields, all inside one transaction: the goods receipt appears
// in the ledger as a regular IN booking.
func (s *materialService) ReceiveOrder(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}
	if m.OrderStatus != model.OrderStatusPlaced {
		return nil, errors.New("Material ist nicht bestellt")
	}

	received := m.OrderedQuantity
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateStockTx(tx, id, received); err != nil {
			return err
		}
		cleared := *m
		cleared.OrderStatus = model.OrderStatusNone
		cleared.OrderedQuantity = 0
		cleared.OrderDate = nil
		if err := s.repo.UpdateOrderFieldsTx(tx, &cleared); err != nil {
			return err
		}
		booking := &model.Booking{
			Type: model.BookingIn,
			Note: fmt.Sprintf("Wareneingang Bestellung %s", m.MaterialID),
			Lines: []model.BookingLine{{
				MaterialRef: m.ID.String(),
				Quantity:    received,
			}},
		}
		return s.bookingRepo.CreateTx(tx, booking)
	})
	if txErr != nil {
		return nil, txErr
	}

	m.Stock += received
	m.OrderStatus = model.OrderStatusNone
	m.OrderedQuantity = 0
	m.OrderDate = nil
	return materialToResponse(m), nil
}

func (s *materialService) CancelOrder(ctx context.Context, id uuid.UUID) (*dto.MaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Material nicht gefunden")
	}
	if m.OrderStatus == model.OrderStatusNone {
		return nil, errors.New("Material hat keine offene Bestellung")
	}

	m.OrderStatus = model.OrderStatusNone
	m.OrderedQuantity = 0
	m.OrderDate = nil

	if err := s.persistOrderFields(ctx, m); err != nil {
		return nil, err
	}
	return materialToResponse(m), nil
}

func (s *materialService) persistOrderFields(ctx context.Context, m *model.Material) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			return s.repo.Update(ctx, m)
		}
		return s.repo.UpdateOrderFieldsTx(tx, m)
	})
}

func materialToResponse(m *model.Material) *dto.MaterialResponse {
	var categoryID *string
	if m.CategoryID != nil {
		cid := m.CategoryID.String()
		categoryID = &cid
	}
	var orderDate *string
	if m.OrderDate != nil {
		d := m.OrderDate.Format("2006-01-02T15:04:05Z")
		orderDate = &d
	}
	return &dto.MaterialResponse{
		ID:                   m.ID.String(),
		MaterialID:           m.MaterialID,
		Description:          m.Description,
		Manufacturer:         m.Manufacturer,
		Unit:                 m.Unit,
		ItemsPerUnit:         m.ItemsPerUnit,
		CategoryID:           categoryID,
		Stock:                m.Stock,
		HeatStock:            m.HeatStock,
		OrderQuantity:        m.OrderQuantity,
		OrderedQuantity:      m.OrderedQuantity,
		OrderStatus:          m.OrderStatus,
		OrderDate:            orderDate,
		ExcludeFromAutoOrder: m.ExcludeFromAutoOrder,
		Price:                m.Price,
		Active:               m.Active,
	}
}
