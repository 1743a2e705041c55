package order

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

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, productIDs []uint64, count int) error
	GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error)
	ListByUser(ctx context.Context, userID uint64, page model.Page) ([]model.OrderEntity, error)
	ListItemsByOrderIDs(ctx context.Context, orderIDs []uint64) ([]model.OrderItemRow, error)
	Update(ctx context.Context, req *model.OrderEntity) error
	Delete(ctx context.Context, id uint64) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery      = "INSERT INTO orders (user_id, created_at) VALUES (?, NOW())"
	insertOrderItemQuery  = "INSERT INTO order_items (order_id, product_id, count) VALUES (?, ?, ?)"
	getOrderQuery         = "SELECT id, user_id, created_at FROM orders WHERE id = ?"
	listOrdersByUserQuery = "SELECT id, user_id, created_at FROM orders WHERE user_id = ? ORDER BY id LIMIT ? OFFSET ?"
	listOrderItemsQuery   = `SELECT oi.id, oi.order_id, oi.product_id, oi.count, p.name AS product_name, p.price AS product_price, p.img AS product_img
FROM order_items oi
JOIN products p ON p.id = oi.product_id
WHERE oi.order_id IN (?)
ORDER BY oi.id`
	updateOrderQuery = "UPDATE orders SET user_id = ? WHERE id = ?"
	deleteOrderQuery = "DELETE FROM orders WHERE id = ?"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, userID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, productIDs []uint64, count int) error {
	for _, productID := range productIDs {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, productID, count); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := r.conn.GetContext(ctx, &entity, getOrderQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64, page model.Page) ([]model.OrderEntity, error) {
	items := make([]model.OrderEntity, 0)
	if err := r.conn.SelectContext(ctx, &items, listOrdersByUserQuery, userID, page.Limit, page.Offset); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListItemsByOrderIDs(ctx context.Context, orderIDs []uint64) ([]model.OrderItemRow, error) {
	items := make([]model.OrderItemRow, 0)
	if len(orderIDs) == 0 {
		return items, nil
	}

	query, args, err := sqlx.In(listOrderItemsQuery, orderIDs)
	if err != nil {
		return nil, err
	}
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) Update(ctx context.Context, data *model.OrderEntity) error {
	_, err := r.conn.ExecContext(ctx, updateOrderQuery, data.UserID, data.ID)
	return err
}

// Delete removes the order together with its items.
func (r *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := r.conn.ExecContext(ctx, deleteOrderQuery, id)
	return err
}
