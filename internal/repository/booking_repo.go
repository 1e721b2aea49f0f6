package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

type BookingRepository interface {
	CreateTx(tx *gorm.DB, b *model.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error)
	List(ctx context.Context, filter dto.BookingFilter) ([]model.Booking, int64, error)
	// ListByProject returns every booking of one project, lines included —
	// the ledger slice the BOM aggregation reads.
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Booking, error)

	DB() *gorm.DB
}

type bookingRepo struct{ db *gorm.DB }

func NewBookingRepository(db *gorm.DB) BookingRepository { return &bookingRepo{db: db} }

func (r *bookingRepo) CreateTx(tx *gorm.DB, b *model.Booking) error {
	return tx.Create(b).Error
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Booking, error) {
	var b model.Booking
	err := r.db.WithContext(ctx).Preload("Lines").First(&b, id).Error
	return &b, err
}

func (r *bookingRepo) List(ctx context.Context, filter dto.BookingFilter) ([]model.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Booking{}).Preload("Lines")

	if filter.ProjectID != "" {
		q = q.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 100
	}
	offset := (page - 1) * limit

	var bookings []model.Booking
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&bookings).Error
	return bookings, total, err
}

func (r *bookingRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) DB() *gorm.DB { return r.db }
