package model

type CategoryEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`
}
