package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
)

type OfferRepository interface {
	Create(ctx context.Context, o *model.Offer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Offer, error)
	List(ctx context.Context, filter dto.OfferFilter) ([]model.Offer, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	// NextNumber draws the next offer number from a dedicated sequence.
	NextNumber(ctx context.Context) (int64, error)
}

type offerRepo struct{ db *gorm.DB }

func NewOfferRepository(db *gorm.DB) OfferRepository { return &offerRepo{db: db} }

func (r *offerRepo) Create(ctx context.Context, o *model.Offer) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *offerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Offer, error) {
	var o model.Offer
	err := r.db.WithContext(ctx).Preload("Items").Preload("Customer").First(&o, id).Error
	return &o, err
}

func (r *offerRepo) List(ctx context.Context, filter dto.OfferFilter) ([]model.Offer, int64, error) {
	var offers []model.Offer
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Offer{}).Preload("Items")

	if filter.CustomerID != "" {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.ProjectID != "" {
		q = q.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("number DESC").Limit(filter.Limit).Offset(offset).Find(&offers).Error
	return offers, total, err
}

func (r *offerRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).Model(&model.Offer{}).Where("id = ?", id).Update("status", status).Error
}

func (r *offerRepo) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('angebot_nummer_seq')").Scan(&n).Error
	return n, err
}
