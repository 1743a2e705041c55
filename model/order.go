package model

import "time"

type OrderEntity struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type OrderItemEntity struct {
	ID        uint64 `db:"id" json:"id"`
	OrderID   uint64 `db:"order_id" json:"order_id"`
	ProductID uint64 `db:"product_id" json:"product_id"`
	Count     int    `db:"count" json:"count"`
}

type OrderItemDetail struct {
	OrderItemEntity
	Product ProductSummary `json:"product"`
}

type OrderDetail struct {
	OrderEntity
	Items []OrderItemDetail `json:"items"`
}

// OrderItemRow is an order item joined with its product, as scanned
type OrderItemRow struct {
	ID           uint64 `db:"id"`
	OrderID      uint64 `db:"order_id"`
	ProductID    uint64 `db:"product_id"`
	Count        int    `db:"count"`
	ProductName  string `db:"product_name"`
	ProductPrice int64  `db:"product_price"`
	ProductImg   string `db:"product_img"`
}

// OrderRequest orders Count pieces of every listed product.
type OrderRequest struct {
	ProductIDs []uint64 `json:"product_id" validate:"required,min=1,dive,gt=0"`
	Count      int      `json:"count" validate:"required,min=1"`
}

type UpdateOrderRequest struct {
	UserID *uint64 `json:"user_id" validate:"omitempty,gt=0"`
}
