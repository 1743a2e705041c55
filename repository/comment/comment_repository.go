package comment

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

type CommentRepository interface {
	Create(ctx context.Context, req *model.CommentEntity) (*model.CommentEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CommentEntity, error)
	ListByProduct(ctx context.Context, productID uint64, page model.Page) ([]model.CommentEntity, error)
	ListByProductIDs(ctx context.Context, productIDs []uint64) ([]model.CommentEntity, error)
	Update(ctx context.Context, req *model.CommentEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const (
	commentColumns              = `id, text, star, product_id, user_id, created_at`
	insertCommentQuery          = `INSERT INTO comments (text, star, product_id, user_id, created_at) VALUES (?, ?, ?, ?, NOW())`
	getCommentQuery             = `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`
	listCommentsByProductQuery  = `SELECT ` + commentColumns + ` FROM comments WHERE product_id = ? ORDER BY id LIMIT ? OFFSET ?`
	listCommentsByProductsQuery = `SELECT ` + commentColumns + ` FROM comments WHERE product_id IN (?) ORDER BY id`
	updateCommentQuery          = `UPDATE comments SET text = ?, star = ? WHERE id = ?`
	deleteCommentQuery          = `DELETE FROM comments WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.CommentEntity) (*model.CommentEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertCommentQuery,
		data.Text, data.Star, data.ProductID, data.UserID)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	// created_at is set by the server
	var created model.CommentEntity
	if err := s.conn.GetContext(ctx, &created, getCommentQuery, lastID); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CommentEntity, error) {
	var entity model.CommentEntity
	if err := s.conn.GetContext(ctx, &entity, getCommentQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListByProduct(ctx context.Context, productID uint64, page model.Page) ([]model.CommentEntity, error) {
	items := make([]model.CommentEntity, 0)
	if err := s.conn.SelectContext(ctx, &items, listCommentsByProductQuery, productID, page.Limit, page.Offset); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) ListByProductIDs(ctx context.Context, productIDs []uint64) ([]model.CommentEntity, error) {
	items := make([]model.CommentEntity, 0)
	if len(productIDs) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(listCommentsByProductsQuery, productIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &items, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *SQL) Update(ctx context.Context, data *model.CommentEntity) error {
	_, err := s.conn.ExecContext(ctx, updateCommentQuery, data.Text, data.Star, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteCommentQuery, id)
	return err
}
