package product

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	commentRepo "github.com/muhammadheryan/storefront/repository/comment"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	productRepo "github.com/muhammadheryan/storefront/repository/product"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, authorID uint64, req *model.ProductRequest) (*model.ProductEntity, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter, page model.Page) ([]model.ProductDetail, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type productAppImpl struct {
	log         *zap.Logger
	productRepo productRepo.ProductRepository
	commentRepo commentRepo.CommentRepository
}

func NewProductApp(log *zap.Logger, productRepo productRepo.ProductRepository, commentRepo commentRepo.CommentRepository) ProductApp {
	return &productAppImpl{log: log, productRepo: productRepo, commentRepo: commentRepo}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, authorID uint64, req *model.ProductRequest) (*model.ProductEntity, error) {
	product, err := s.productRepo.Create(ctx, &model.ProductEntity{
		AuthorID:    authorID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Img:         req.Img,
	})
	if err != nil {
		if mysqlerr.IsInvalidReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "category_id does not exist")
		}
		s.log.Error("[CreateProduct] error productRepo.Create", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

// ListProducts returns a page of products with their comments attached.
func (s *productAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter, page model.Page) ([]model.ProductDetail, error) {
	products, err := s.productRepo.List(ctx, filter, page)
	if err != nil {
		s.log.Error("[ListProducts] error productRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.withComments(ctx, "[ListProducts]", products)
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductDetail, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[GetProduct] error productRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	details, err := s.withComments(ctx, "[GetProduct]", []model.ProductEntity{*product})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *productAppImpl) withComments(ctx context.Context, op string, products []model.ProductEntity) ([]model.ProductDetail, error) {
	details := make([]model.ProductDetail, 0, len(products))
	if len(products) == 0 {
		return details, nil
	}

	ids := make([]uint64, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	comments, err := s.commentRepo.ListByProductIDs(ctx, ids)
	if err != nil {
		s.log.Error(op+" error commentRepo.ListByProductIDs", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byProduct := make(map[uint64][]model.CommentEntity, len(products))
	for _, c := range comments {
		byProduct[c.ProductID] = append(byProduct[c.ProductID], c)
	}
	for _, p := range products {
		list := byProduct[p.ID]
		if list == nil {
			list = []model.CommentEntity{}
		}
		details = append(details, model.ProductDetail{ProductEntity: p, Comments: list})
	}
	return details, nil
}

// UpdateProduct applies every non-nil field of req. The author never changes.
func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[UpdateProduct] error productRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}
	if req.Img != nil {
		product.Img = *req.Img
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		if mysqlerr.IsInvalidReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "category_id does not exist")
		}
		s.log.Error("[UpdateProduct] error productRepo.Update", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}

// DeleteProduct removes the product with its comments and order items.
func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[DeleteProduct] error productRepo.GetByID", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteProduct] error productRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
