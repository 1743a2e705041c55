package model

type RegionEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// RegionDetail is a region with the users living in it
type RegionDetail struct {
	RegionEntity
	Users []UserEntity `json:"users"`
}

type RegionRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UpdateRegionRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=50"`
}
