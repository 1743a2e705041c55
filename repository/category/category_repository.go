package category

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

type CategoryRepository interface {
	Create(ctx context.Context, req *model.CategoryEntity) (*model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	GetByName(ctx context.Context, name string) (*model.CategoryEntity, error)
	List(ctx context.Context, page model.Page) ([]model.CategoryEntity, error)
	Update(ctx context.Context, req *model.CategoryEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	insertCategoryQuery    = `INSERT INTO categories (name) VALUES (?)`
	getCategoryByIDQuery   = `SELECT id, name FROM categories WHERE id = ?`
	getCategoryByNameQuery = `SELECT id, name FROM categories WHERE name = ?`
	listCategoriesQuery    = `SELECT id, name FROM categories ORDER BY id LIMIT ? OFFSET ?`
	updateCategoryQuery    = `UPDATE categories SET name = ? WHERE id = ?`
	deleteCategoryQuery    = `DELETE FROM categories WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCategoryQuery, data.Name)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	return s.getOne(ctx, getCategoryByIDQuery, id)
}

func (s *SQL) GetByName(ctx context.Context, name string) (*model.CategoryEntity, error) {
	return s.getOne(ctx, getCategoryByNameQuery, name)
}

func (s *SQL) getOne(ctx context.Context, query string, arg any) (*model.CategoryEntity, error) {
	var entity model.CategoryEntity
	if err := s.conn.GetContext(ctx, &entity, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, page model.Page) ([]model.CategoryEntity, error) {
	items := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listCategoriesQuery, page.Limit, page.Offset); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) error {
	_, err := s.conn.ExecContext(ctx, updateCategoryQuery, data.Name, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCategoryQuery, id)
	return err
}
