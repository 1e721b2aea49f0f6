package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

// MaterialRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type MaterialRepository interface {
	Create(ctx context.Context, m *model.Material) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error)
	FindByCode(ctx context.Context, code string) (*model.Material, error)
	List(ctx context.Context, filter dto.MaterialFilter) ([]model.Material, int64, error)
	// ListAll returns the full active catalog — the input of every
	// order-need and BOM derivation.
	ListAll(ctx context.Context) ([]model.Material, error)
	Update(ctx context.Context, m *model.Material) error
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	UpdateOrderFieldsTx(tx *gorm.DB, m *model.Material) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type materialRepo struct{ db *gorm.DB }

func NewMaterialRepository(db *gorm.DB) MaterialRepository { return &materialRepo{db: db} }

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *materialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *materialRepo) FindByCode(ctx context.Context, code string) (*model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).Where("material_id = ? AND active = true", code).First(&m).Error
	return &m, err
}

func (r *materialRepo) List(ctx context.Context, filter dto.MaterialFilter) ([]model.Material, int64, error) {
	var materials []model.Material
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Material{})

	// Active filter: "false" = inactive, "all" = everything, default = active
	switch filter.Active {
	case "false":
		q = q.Where("active = false")
	case "all":
		// no filter
	default:
		q = q.Where("active = true")
	}

	if filter.Code != "" {
		q = q.Where("material_id = ?", filter.Code)
	}
	if filter.Description != "" {
		q = q.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("description ASC").Limit(filter.Limit).Offset(offset).Find(&materials).Error
	return materials, total, err
}

func (r *materialRepo) ListAll(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Where("active = true").Order("material_id ASC").Find(&materials).Error
	return materials, err
}

func (r *materialRepo) Update(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *materialRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("active", false).Error
}

func (r *materialRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Material{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

// UpdateOrderFieldsTx persists only the order lifecycle columns inside a tx.
func (r *materialRepo) UpdateOrderFieldsTx(tx *gorm.DB, m *model.Material) error {
	return tx.Model(&model.Material{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"order_status":     m.OrderStatus,
		"ordered_quantity": m.OrderedQuantity,
		"order_date":       m.OrderDate,
	}).Error
}

func (r *materialRepo) DB() *gorm.DB { return r.db }
