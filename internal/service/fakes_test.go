package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Cheertaboi/shop-admin/internal/auth"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/models"
	"github.com/Cheertaboi/shop-admin/internal/repository"
)

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *fakePublisher) Publish(ctx context.Context, e events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Resource+":"+e.Action)
	}
	return out
}

type fakeCouponRepo struct {
	data    map[uuid.UUID]models.Coupon
	updates int
}

func newFakeCouponRepo(coupons ...models.Coupon) *fakeCouponRepo {
	r := &fakeCouponRepo{data: map[uuid.UUID]models.Coupon{}}
	for _, c := range coupons {
		r.data[c.ID] = c
	}
	return r
}

func (r *fakeCouponRepo) List(ctx context.Context, q models.ListQuery) ([]models.Coupon, int, error) {
	var out []models.Coupon
	for _, c := range r.data {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *fakeCouponRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Coupon, error) {
	c, ok := r.data[id]
	if !ok {
		return models.Coupon{}, repository.ErrNotFound
	}
	return c, nil
}

func (r *fakeCouponRepo) CodeTaken(ctx context.Context, code string, except uuid.UUID) (bool, error) {
	for id, c := range r.data {
		if c.Code == code && id != except {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCouponRepo) Create(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	c.ID = uuid.New()
	r.data[c.ID] = c
	return c, nil
}

func (r *fakeCouponRepo) Update(ctx context.Context, c models.Coupon) (models.Coupon, error) {
	if _, ok := r.data[c.ID]; !ok {
		return models.Coupon{}, repository.ErrNotFound
	}
	r.updates++
	r.data[c.ID] = c
	return c, nil
}

func (r *fakeCouponRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.data[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

type fakeProductRepo struct {
	data   map[uuid.UUID]models.Product
	images map[uuid.UUID][]models.ProductImage
	writes int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{data: map[uuid.UUID]models.Product{}, images: map[uuid.UUID][]models.ProductImage{}}
}

func (r *fakeProductRepo) put(p models.Product) {
	r.data[p.ID] = p
	var imgs []models.ProductImage
	for _, u := range p.Images {
		imgs = append(imgs, models.ProductImage{ID: uuid.New(), ProductID: p.ID, Image: u})
	}
	r.images[p.ID] = imgs
}

func (r *fakeProductRepo) List(ctx context.Context, q models.ListQuery) ([]models.ProductListItem, int, error) {
	var out []models.ProductListItem
	for _, p := range r.data {
		out = append(out, models.ProductListItem{ID: p.ID, Name: p.Name, State: p.State()})
	}
	return out, len(out), nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Product, error) {
	p, ok := r.data[id]
	if !ok {
		return models.Product{}, repository.ErrNotFound
	}
	p.Images = nil
	return p, nil
}

func (r *fakeProductRepo) Images(ctx context.Context, id uuid.UUID) ([]models.ProductImage, error) {
	return r.images[id], nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.ID = uuid.New()
	r.put(p)
	r.writes++
	return p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p models.Product) (models.Product, error) {
	r.put(p)
	r.writes++
	return p, nil
}

func (r *fakeProductRepo) SaveFlags(ctx context.Context, p models.Product) error {
	stored := r.data[p.ID]
	stored.IsAvailable = p.IsAvailable
	stored.IsDeleted = p.IsDeleted
	r.data[p.ID] = stored
	r.writes++
	return nil
}

type fakeLookups struct {
	missing map[models.LookupKind]bool
	err     error
}

func (f fakeLookups) Exists(ctx context.Context, kind models.LookupKind, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return !f.missing[kind], nil
}

type fakeOrderRepo struct {
	orders  map[uuid.UUID]models.Order
	details map[uuid.UUID]models.OrderDetail
}

func (r *fakeOrderRepo) List(ctx context.Context, q models.ListQuery) ([]models.OrderListItem, int, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) Detail(ctx context.Context, id uuid.UUID) (models.OrderDetail, error) {
	d, ok := r.details[id]
	if !ok {
		return models.OrderDetail{}, repository.ErrNotFound
	}
	return d, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next models.OrderStatus, check func(models.OrderStatus) error) (models.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return models.Order{}, repository.ErrNotFound
	}
	if err := check(o.Status); err != nil {
		return models.Order{}, err
	}
	o.Status = next
	r.orders[id] = o
	return o, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]models.User
	sets  int
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uuid.UUID]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) List(ctx context.Context, roleID uuid.UUID, q models.ListQuery) ([]models.UserListItem, int, error) {
	var out []models.UserListItem
	for _, u := range r.users {
		if u.RoleID == roleID {
			out = append(out, models.UserListItem{ID: u.ID, Name: u.Name, Email: u.Email})
		}
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *fakeUserRepo) SetBanned(ctx context.Context, id uuid.UUID, banned bool) (models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.IsBanned = banned
	r.users[id] = u
	r.sets++
	return u, nil
}

type fakeRoles map[string]uuid.UUID

func (f fakeRoles) RoleID(ctx context.Context, name string) (uuid.UUID, error) {
	id, ok := f[name]
	if !ok {
		return uuid.Nil, errors.New("role lookup failed")
	}
	return id, nil
}

type fakeTokens struct {
	verify map[string]uuid.UUID
	err    error
}

func (f fakeTokens) Issue(id uuid.UUID) (string, error) { return "token-" + id.String(), nil }

func (f fakeTokens) Verify(token string) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	id, ok := f.verify[token]
	if !ok {
		return uuid.Nil, auth.ErrTokenInvalid
	}
	return id, nil
}
