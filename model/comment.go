package model

import "time"

type CommentEntity struct {
	ID        uint64    `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	Star      float64   `db:"star" json:"star"`
	ProductID uint64    `db:"product_id" json:"product_id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CommentRequest has no user_id: the author is always the caller.
type CommentRequest struct {
	Text      string  `json:"text" validate:"required,max=255"`
	ProductID uint64  `json:"product_id" validate:"required"`
	Star      float64 `json:"star" validate:"gte=0,lte=5"`
}

type UpdateCommentRequest struct {
	Text *string  `json:"text" validate:"omitempty,min=1,max=255"`
	Star *float64 `json:"star" validate:"omitempty,gte=0,lte=5"`
}
