package transport_test

import (
	"context"
	"sync"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/storefront/model"
)

// memUsers is an in-memory user store keyed by id.
type memUsers struct {
	mu     sync.Mutex
	nextID uint64
	rows   map[uint64]model.UserEntity
}

func newMemUsers(seed ...model.UserEntity) *memUsers {
	m := &memUsers{rows: map[uint64]model.UserEntity{}}
	for _, u := range seed {
		m.rows[u.ID] = u
		if u.ID > m.nextID {
			m.nextID = u.ID
		}
	}
	return m
}

func (m *memUsers) Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == req.Email {
			return nil, &mysql.MySQLError{Number: 1062}
		}
	}
	m.nextID++
	req.ID = m.nextID
	m.rows[req.ID] = *req
	return req, nil
}

func (m *memUsers) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if filter.ID != 0 && u.ID != filter.ID {
			continue
		}
		if filter.Email != "" && u.Email != filter.Email {
			continue
		}
		if filter.Phone != "" && u.Phone != filter.Phone {
			continue
		}
		if filter.RegionID != 0 && u.RegionID != filter.RegionID {
			continue
		}
		found := u
		return &found, nil
	}
	return nil, nil
}

func (m *memUsers) List(ctx context.Context, filter *model.UserFilter, page model.Page) ([]model.UserDetail, error) {
	return []model.UserDetail{}, nil
}

func (m *memUsers) ListByRegionIDs(ctx context.Context, regionIDs []uint64) ([]model.UserEntity, error) {
	return []model.UserEntity{}, nil
}

func (m *memUsers) Update(ctx context.Context, req *model.UserEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[req.ID] = *req
	return nil
}

func (m *memUsers) Delete(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

// memCategories is an in-memory category store with ids in insert order.
type memCategories struct {
	mu   sync.Mutex
	rows []model.CategoryEntity
}

func (m *memCategories) Create(ctx context.Context, req *model.CategoryEntity) (*model.CategoryEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	req.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *req)
	return req, nil
}

func (m *memCategories) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memCategories) GetByName(ctx context.Context, name string) (*model.CategoryEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.rows {
		if c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memCategories) List(ctx context.Context, page model.Page) ([]model.CategoryEntity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.CategoryEntity(nil), m.rows...), nil
}

func (m *memCategories) Update(ctx context.Context, req *model.CategoryEntity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == req.ID {
			m.rows[i] = *req
		}
	}
	return nil
}

func (m *memCategories) Delete(ctx context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			break
		}
	}
	return nil
}

// codeBox records the last code delivered to every recipient.
type codeBox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (b *codeBox) SendOTP(ctx context.Context, d *model.OTPDelivery) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.codes == nil {
		b.codes = map[string]string{}
	}
	b.codes[d.Recipient] = d.Code
	return nil
}

func (b *codeBox) last(recipient string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.codes[recipient]
}
