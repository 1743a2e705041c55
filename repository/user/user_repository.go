package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/model"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter, page model.Page) ([]model.UserDetail, error)
	ListByRegionIDs(ctx context.Context, regionIDs []uint64) ([]model.UserEntity, error)
	Update(ctx context.Context, req *model.UserEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	userColumns     = `id, name, email, phone, password_hash, role, status, region_id, year, image, created_at, updated_at`
	insertUserQuery = `INSERT INTO users (name, email, phone, password_hash, role, status, region_id, year, image, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT ` + userColumns + ` FROM users WHERE true`
	listUserBase    = `SELECT u.id, u.name, u.email, u.phone, u.password_hash, u.role, u.status, u.region_id, u.year, u.image, u.created_at, u.updated_at, r.name AS region_name
FROM users u
JOIN regions r ON r.id = u.region_id
WHERE true`
	listUsersByRegionsQuery = `SELECT ` + userColumns + ` FROM users WHERE region_id IN (?) ORDER BY id`
	updateUserQuery         = `UPDATE users SET name = ?, email = ?, phone = ?, password_hash = ?, role = ?, status = ?, region_id = ?, year = ?, image = ?, updated_at = NOW() WHERE id = ?`
	deleteUserQuery         = `DELETE FROM users WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.Name, data.Email, data.Phone, data.PasswordHash, data.Role, data.Status, data.RegionID, data.Year, data.Image)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// created_at is set by the server
	var created model.UserEntity
	if err := s.conn.GetContext(ctx, &created, getUserBase+" AND id = ?", lastID); err != nil {
		return nil, err
	}
	return &created, nil
}

// Get returns the first user matching every set filter field, or nil when
// there is none.
func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 4)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Phone != "" {
		query += " AND phone = ?"
		args = append(args, filter.Phone)
	}
	if filter.RegionID != 0 {
		query += " AND region_id = ?"
		args = append(args, filter.RegionID)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter, page model.Page) ([]model.UserDetail, error) {
	query := listUserBase
	args := make([]any, 0, 3)

	if filter != nil && filter.RegionID != 0 {
		query += " AND u.region_id = ?"
		args = append(args, filter.RegionID)
	}
	query += " ORDER BY u.id LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.Offset)

	items := make([]model.UserDetail, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListByRegionIDs(ctx context.Context, regionIDs []uint64) ([]model.UserEntity, error) {
	items := make([]model.UserEntity, 0)
	if len(regionIDs) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(listUsersByRegionsQuery, regionIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) error {
	_, err := s.conn.ExecContext(ctx, updateUserQuery,
		data.Name, data.Email, data.Phone, data.PasswordHash, data.Role, data.Status, data.RegionID, data.Year, data.Image, data.ID)
	return err
}

// Delete removes the user; comments, orders and authored products follow
// through ON DELETE CASCADE.
func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteUserQuery, id)
	return err
}
