package product

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

type ProductRepository interface {
	Create(ctx context.Context, req *model.ProductEntity) (*model.ProductEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	List(ctx context.Context, filter *model.ProductFilter, page model.Page) ([]model.ProductEntity, error)
	Update(ctx context.Context, req *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns     = `id, author_id, name, description, price, category_id, img`
	insertProductQuery = `INSERT INTO products (author_id, name, description, price, category_id, img) VALUES (?, ?, ?, ?, ?, ?)`
	getProductQuery    = `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	listProductsBase   = `SELECT ` + productColumns + ` FROM products WHERE true`
	updateProductQuery = `UPDATE products SET name = ?, description = ?, price = ?, category_id = ?, img = ? WHERE id = ?`
	deleteProductQuery = `DELETE FROM products WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.AuthorID, data.Name, data.Description, data.Price, data.CategoryID, data.Img)
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	if err := s.conn.GetContext(ctx, &entity, getProductQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter, page model.Page) ([]model.ProductEntity, error) {
	query := listProductsBase
	args := make([]any, 0, 3)

	if filter != nil && filter.CategoryID != 0 {
		query += " AND category_id = ?"
		args = append(args, filter.CategoryID)
	}
	query += " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, page.Limit, page.Offset)

	items := make([]model.ProductEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes every mutable column. author_id is fixed at creation.
func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) error {
	_, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Name, data.Description, data.Price, data.CategoryID, data.Img, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteProductQuery, id)
	return err
}
