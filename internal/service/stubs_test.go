package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/dto"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/model"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/repository"
)

func mustParseUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// ── Stubs ─────────────────────────────────────────────────────────────────────
// In-memory repositories. DB() returns nil so runTx runs callbacks
// without a real transaction.

type stubMaterialRepo struct {
	materials map[uuid.UUID]*model.Material
	codeIdx   map[string]*model.Material
}

func newStubMaterialRepo(materials ...*model.Material) *stubMaterialRepo {
	r := &stubMaterialRepo{
		materials: make(map[uuid.UUID]*model.Material),
		codeIdx:   make(map[string]*model.Material),
	}
	for _, m := range materials {
		if m.ID == uuid.Nil {
			m.ID = uuid.New()
		}
		r.materials[m.ID] = m
		r.codeIdx[m.MaterialID] = m
	}
	return r
}

func (r *stubMaterialRepo) Create(_ context.Context, m *model.Material) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if _, exists := r.codeIdx[m.MaterialID]; exists {
		return errors.New("duplicate material_id")
	}
	r.materials[m.ID] = m
	r.codeIdx[m.MaterialID] = m
	return nil
}

// FindByID returns a copy, like a real row scan would — services mutate
// the returned struct freely without touching the stored state.
func (r *stubMaterialRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *stubMaterialRepo) FindByCode(_ context.Context, code string) (*model.Material, error) {
	m, ok := r.codeIdx[code]
	if !ok || !m.Active {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *stubMaterialRepo) List(_ context.Context, _ dto.MaterialFilter) ([]model.Material, int64, error) {
	out := make([]model.Material, 0, len(r.materials))
	for _, m := range r.materials {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *stubMaterialRepo) ListAll(_ context.Context) ([]model.Material, error) {
	out := make([]model.Material, 0, len(r.materials))
	for _, m := range r.materials {
		if m.Active {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.Material) error {
	r.materials[m.ID] = m
	r.codeIdx[m.MaterialID] = m
	return nil
}

func (r *stubMaterialRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	m, ok := r.materials[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Active = false
	return nil
}

func (r *stubMaterialRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	m, ok := r.materials[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.Stock += delta
	return nil
}

func (r *stubMaterialRepo) UpdateOrderFieldsTx(_ *gorm.DB, m *model.Material) error {
	stored, ok := r.materials[m.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.OrderStatus = m.OrderStatus
	stored.OrderedQuantity = m.OrderedQuantity
	stored.OrderDate = m.OrderDate
	return nil
}

func (r *stubMaterialRepo) DB() *gorm.DB { return nil }

var _ repository.MaterialRepository = (*stubMaterialRepo)(nil)

type stubBookingRepo struct {
	bookings []*model.Booking
}

func (r *stubBookingRepo) CreateTx(_ *gorm.DB, b *model.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBookingRepo) List(_ context.Context, filter dto.BookingFilter) ([]model.Booking, int64, error) {
	out := make([]model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Type != "" && b.Type != filter.Type {
			continue
		}
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *stubBookingRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range r.bookings {
		if b.ProjectID != nil && *b.ProjectID == projectID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) DB() *gorm.DB { return nil }

var _ repository.BookingRepository = (*stubBookingRepo)(nil)

type stubProjectRepo struct {
	projects map[uuid.UUID]*model.Project
}

func newStubProjectRepo(projects ...*model.Project) *stubProjectRepo {
	r := &stubProjectRepo{projects: make(map[uuid.UUID]*model.Project)}
	for _, p := range projects {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.projects[p.ID] = p
	}
	return r
}

func (r *stubProjectRepo) Create(_ context.Context, p *model.Project) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) List(_ context.Context, _ dto.ProjectFilter) ([]model.Project, int64, error) {
	out := make([]model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *model.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.projects, id)
	return nil
}

var _ repository.ProjectRepository = (*stubProjectRepo)(nil)

type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo(customers ...*model.Customer) *stubCustomerRepo {
	r := &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
	for _, c := range customers {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		r.customers[c.ID] = c
	}
	return r
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, int64, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.customers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Active = false
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubOfferRepo struct {
	offers map[uuid.UUID]*model.Offer
	seq    int64
}

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{offers: make(map[uuid.UUID]*model.Offer), seq: 999}
}

func (r *stubOfferRepo) Create(_ context.Context, o *model.Offer) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	r.offers[o.ID] = o
	return nil
}

func (r *stubOfferRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Offer, error) {
	o, ok := r.offers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOfferRepo) List(_ context.Context, _ dto.OfferFilter) ([]model.Offer, int64, error) {
	out := make([]model.Offer, 0, len(r.offers))
	for _, o := range r.offers {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOfferRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	o, ok := r.offers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *stubOfferRepo) NextNumber(_ context.Context) (int64, error) {
	r.seq++
	return r.seq, nil
}

var _ repository.OfferRepository = (*stubOfferRepo)(nil)
