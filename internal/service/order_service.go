package service

import (
	"context"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/reconcile"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

// OrderService projects the catalog onto the ordering screen. It owns
// no state: every call fetches the current catalog and hands it to the
// pure derivation functions, so the view is always a full recomputation.
type OrderService interface {
	DeriveRows(ctx context.Context) ([]dto.OrderRowResponse, error)
	DeriveStats(ctx context.Context) (*dto.OrderStatsResponse, error)
}

type orderService struct {
	materialRepo repository.MaterialRepository
}

func NewOrderService(materialRepo repository.MaterialRepository) OrderService {
	return &orderService{materialRepo: materialRepo}
}

func (s *orderService) DeriveRows(ctx context.Context) ([]dto.OrderRowResponse, error) {
	materials, err := s.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := reconcile.DeriveOrderRows(materials)
	out := make([]dto.OrderRowResponse, 0, len(rows))
	for _, r := range rows {
		var orderDate *string
		if r.Material.OrderDate != nil {
			d := r.Material.OrderDate.Format("2006-01-02T15:04:05Z")
			orderDate = &d
		}
		out = append(out, dto.OrderRowResponse{
			MaterialID:        r.Material.MaterialID,
			Description:       r.Material.Description,
			Manufacturer:      r.Material.Manufacturer,
			Unit:              r.Material.Unit,
			Stock:             r.Material.Stock,
			DisplayType:       string(r.Type),
			Quantity:          r.Quantity,
			IsAdditionalOrder: r.IsAdditionalOrder,
			OrderStatus:       r.Material.OrderStatus,
			OrderDate:         orderDate,
		})
	}
	return out, nil
}

func (s *orderService) DeriveStats(ctx context.Context) (*dto.OrderStatsResponse, error) {
	materials, err := s.materialRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := reconcile.DeriveOrderStats(materials)
	excluded := make([]dto.MaterialResponse, 0, len(stats.ExcludedLowStockMaterials))
	for i := range stats.ExcludedLowStockMaterials {
		excluded = append(excluded, *materialToResponse(&stats.ExcludedLowStockMaterials[i]))
	}
	return &dto.OrderStatsResponse{
		ToOrderCount:              stats.ToOrderCount,
		OrderedCount:              stats.OrderedCount,
		ExcludedLowStockCount:     stats.ExcludedLowStockCount,
		ExcludedLowStockMaterials: excluded,
	}, nil
}
