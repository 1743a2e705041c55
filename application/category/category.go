package category

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	categoryrepo "github.com/muhammadheryan/storefront/repository/category"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
)

type CategoryApp interface {
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error)
	GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error)
	ListCategories(ctx context.Context, page model.Page) ([]model.CategoryEntity, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.UpdateCategoryRequest) (*model.CategoryEntity, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type categoryAppImpl struct {
	log          *zap.Logger
	categoryRepo categoryrepo.CategoryRepository
}

func NewCategoryApp(log *zap.Logger, categoryRepo categoryrepo.CategoryRepository) CategoryApp {
	return &categoryAppImpl{log: log, categoryRepo: categoryRepo}
}

func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	existing, err := s.categoryRepo.GetByName(ctx, req.Name)
	if err != nil {
		s.log.Error("[CreateCategory] err categoryRepo.GetByName", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "category already exists")
	}

	category, err := s.categoryRepo.Create(ctx, &model.CategoryEntity{Name: req.Name})
	if err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "category already exists")
		}
		s.log.Error("[CreateCategory] err categoryRepo.Create", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return category, nil
}

func (s *categoryAppImpl) GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[GetCategory] err categoryRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return category, nil
}

func (s *categoryAppImpl) ListCategories(ctx context.Context, page model.Page) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx, page)
	if err != nil {
		s.log.Error("[ListCategories] err categoryRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if categories == nil {
		categories = []model.CategoryEntity{}
	}
	return categories, nil
}

func (s *categoryAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.UpdateCategoryRequest) (*model.CategoryEntity, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		other, err := s.categoryRepo.GetByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("[UpdateCategory] err categoryRepo.GetByName", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "category already exists")
		}
		category.Name = *req.Name
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "category already exists")
		}
		s.log.Error("[UpdateCategory] err categoryRepo.Update", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return category, nil
}

// DeleteCategory removes the category and every product filed under it.
func (s *categoryAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteCategory] err categoryRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
