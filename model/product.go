package model

type ProductEntity struct {
	ID          uint64 `db:"id" json:"id"`
	AuthorID    uint64 `db:"author_id" json:"author_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Price       int64  `db:"price" json:"price"`
	CategoryID  uint64 `db:"category_id" json:"category_id"`
	Img         string `db:"img" json:"img"`
}

// ProductDetail is a product with its comments
type ProductDetail struct {
	ProductEntity
	Comments []CommentEntity `json:"comments"`
}

// ProductSummary is the slice of a product shown inside orders
type ProductSummary struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Price int64  `db:"price" json:"price"`
	Img   string `db:"img" json:"img"`
}

type ProductFilter struct {
	CategoryID uint64
}

type ProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"required,min=2,max=150"`
	Price       int64  `json:"price" validate:"required,gt=0"`
	CategoryID  uint64 `json:"category_id" validate:"required"`
	Img         string `json:"img" validate:"max=255"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,min=2,max=150"`
	Price       *int64  `json:"price" validate:"omitempty,gt=0"`
	CategoryID  *uint64 `json:"category_id" validate:"omitempty,gt=0"`
	Img         *string `json:"img" validate:"omitempty,max=255"`
}
