package comment

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	commentrepo "github.com/muhammadheryan/storefront/repository/comment"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
)

type CommentApp interface {
	CreateComment(ctx context.Context, userID uint64, req *model.CommentRequest) (*model.CommentEntity, error)
	GetComment(ctx context.Context, id uint64) (*model.CommentEntity, error)
	ListProductComments(ctx context.Context, productID uint64, page model.Page) ([]model.CommentEntity, error)
	UpdateComment(ctx context.Context, userID, id uint64, req *model.UpdateCommentRequest) (*model.CommentEntity, error)
	DeleteComment(ctx context.Context, userID, id uint64) error
}

type commentAppImpl struct {
	log         *zap.Logger
	commentRepo commentrepo.CommentRepository
}

func NewCommentApp(log *zap.Logger, commentRepo commentrepo.CommentRepository) CommentApp {
	return &commentAppImpl{log: log, commentRepo: commentRepo}
}

// CreateComment stores a comment authored by userID.
func (s *commentAppImpl) CreateComment(ctx context.Context, userID uint64, req *model.CommentRequest) (*model.CommentEntity, error) {
	comment, err := s.commentRepo.Create(ctx, &model.CommentEntity{
		Text:      req.Text,
		Star:      req.Star,
		ProductID: req.ProductID,
		UserID:    userID,
	})
	if err != nil {
		if mysqlerr.IsInvalidReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "product_id does not exist")
		}
		s.log.Error("[CreateComment] err commentRepo.Create", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return comment, nil
}

func (s *commentAppImpl) GetComment(ctx context.Context, id uint64) (*model.CommentEntity, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[GetComment] err commentRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if comment == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return comment, nil
}

func (s *commentAppImpl) ListProductComments(ctx context.Context, productID uint64, page model.Page) ([]model.CommentEntity, error) {
	comments, err := s.commentRepo.ListByProduct(ctx, productID, page)
	if err != nil {
		s.log.Error("[ListProductComments] err commentRepo.ListByProduct", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if comments == nil {
		comments = []model.CommentEntity{}
	}
	return comments, nil
}

// owned loads a comment and checks that userID wrote it.
func (s *commentAppImpl) owned(ctx context.Context, userID, id uint64) (*model.CommentEntity, error) {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrNotYours)
	}
	return comment, nil
}

func (s *commentAppImpl) UpdateComment(ctx context.Context, userID, id uint64, req *model.UpdateCommentRequest) (*model.CommentEntity, error) {
	comment, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		comment.Text = *req.Text
	}
	if req.Star != nil {
		comment.Star = *req.Star
	}

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		s.log.Error("[UpdateComment] err commentRepo.Update", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return comment, nil
}

func (s *commentAppImpl) DeleteComment(ctx context.Context, userID, id uint64) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteComment] err commentRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
