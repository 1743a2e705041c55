package comment_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	appcomment "github.com/muhammadheryan/storefront/application/comment"
	"github.com/muhammadheryan/storefront/constant"
	commentmocks "github.com/muhammadheryan/storefront/mocks/repository/comment"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestCommentApp_CreateComment(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint64
		req      *model.CommentRequest
		mockCall func(repo *commentmocks.CommentRepository)
		want     *model.CommentEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: author is the caller",
			userID: 5,
			req:    &model.CommentRequest{Text: "nice", ProductID: 2, Star: 4.5},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("Create", mock.Anything, &model.CommentEntity{Text: "nice", Star: 4.5, ProductID: 2, UserID: 5}).
					Return(&model.CommentEntity{ID: 1, Text: "nice", Star: 4.5, ProductID: 2, UserID: 5}, nil).
					Once()
			},
			want: &model.CommentEntity{ID: 1, Text: "nice", Star: 4.5, ProductID: 2, UserID: 5},
		},
		{
			name:   "error: product does not exist",
			userID: 5,
			req:    &model.CommentRequest{Text: "nice", ProductID: 99},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("Create", mock.Anything, mock.Anything).
					Return(nil, &mysql.MySQLError{Number: 1452}).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: db failure",
			userID: 5,
			req:    &model.CommentRequest{Text: "nice", ProductID: 2},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := commentmocks.NewCommentRepository(t)
			tt.mockCall(repo)
			app := appcomment.NewCommentApp(zap.NewNop(), repo)

			got, err := app.CreateComment(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorType() != tt.errCode {
					t.Fatalf("error type = %d, want %d", ce.ErrorType(), tt.errCode)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateComment() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommentApp_UpdateComment(t *testing.T) {
	existing := func() *model.CommentEntity {
		return &model.CommentEntity{ID: 10, Text: "old", Star: 3, ProductID: 2, UserID: 5}
	}

	tests := []struct {
		name     string
		userID   uint64
		req      *model.UpdateCommentRequest
		mockCall func(repo *commentmocks.CommentRepository)
		want     *model.CommentEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: owner changes text only",
			userID: 5,
			req:    &model.UpdateCommentRequest{Text: strPtr("new")},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("GetByID", mock.Anything, uint64(10)).Return(existing(), nil).Once()
				repo.On("Update", mock.Anything, &model.CommentEntity{ID: 10, Text: "new", Star: 3, ProductID: 2, UserID: 5}).
					Return(nil).
					Once()
			},
			want: &model.CommentEntity{ID: 10, Text: "new", Star: 3, ProductID: 2, UserID: 5},
		},
		{
			name:   "error: someone else's comment is left alone",
			userID: 6,
			req:    &model.UpdateCommentRequest{Text: strPtr("hijack"), Star: floatPtr(0)},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("GetByID", mock.Anything, uint64(10)).Return(existing(), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotYours,
		},
		{
			name:   "error: comment not found",
			userID: 5,
			req:    &model.UpdateCommentRequest{Text: strPtr("new")},
			mockCall: func(repo *commentmocks.CommentRepository) {
				repo.On("GetByID", mock.Anything, uint64(10)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := commentmocks.NewCommentRepository(t)
			tt.mockCall(repo)
			app := appcomment.NewCommentApp(zap.NewNop(), repo)

			got, err := app.UpdateComment(context.Background(), tt.userID, 10, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateComment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorType() != tt.errCode {
					t.Fatalf("error type = %d, want %d", ce.ErrorType(), tt.errCode)
				}
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UpdateComment() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCommentApp_DeleteComment(t *testing.T) {
	t.Run("success: owner deletes", func(t *testing.T) {
		repo := commentmocks.NewCommentRepository(t)
		repo.On("GetByID", mock.Anything, uint64(10)).Return(&model.CommentEntity{ID: 10, UserID: 5}, nil).Once()
		repo.On("Delete", mock.Anything, uint64(10)).Return(nil).Once()

		if err := appcomment.NewCommentApp(zap.NewNop(), repo).DeleteComment(context.Background(), 5, 10); err != nil {
			t.Fatalf("DeleteComment() error = %v", err)
		}
	})

	t.Run("error: non-owner gets not yours", func(t *testing.T) {
		repo := commentmocks.NewCommentRepository(t)
		repo.On("GetByID", mock.Anything, uint64(10)).Return(&model.CommentEntity{ID: 10, UserID: 5}, nil).Once()

		err := appcomment.NewCommentApp(zap.NewNop(), repo).DeleteComment(context.Background(), 6, 10)
		if !errors.Is(err, cerr.SetCustomError(constant.ErrNotYours)) {
			t.Fatalf("DeleteComment() error = %v, want not yours", err)
		}
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestCommentApp_ListProductComments(t *testing.T) {
	repo := commentmocks.NewCommentRepository(t)
	page := model.NewPage(10, 2)
	repo.On("ListByProduct", mock.Anything, uint64(2), page).Return(nil, nil).Once()

	got, err := appcomment.NewCommentApp(zap.NewNop(), repo).ListProductComments(context.Background(), 2, page)
	if err != nil {
		t.Fatalf("ListProductComments() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("ListProductComments() = %#v, want empty slice", got)
	}
}
