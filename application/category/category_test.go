package category_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appcategory "github.com/muhammadheryan/storefront/application/category"
	"github.com/muhammadheryan/storefront/constant"
	categorymocks "github.com/muhammadheryan/storefront/mocks/repository/category"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestCategoryApp_CreateCategory(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CategoryRequest
		mockCall func(repo *categorymocks.CategoryRepository)
		want     *model.CategoryEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.CategoryRequest{Name: "Phones"},
			mockCall: func(repo *categorymocks.CategoryRepository) {
				repo.On("GetByName", mock.Anything, "Phones").Return(nil, nil).Once()
				repo.On("Create", mock.Anything, &model.CategoryEntity{Name: "Phones"}).
					Return(&model.CategoryEntity{ID: 4, Name: "Phones"}, nil).
					Once()
			},
			want: &model.CategoryEntity{ID: 4, Name: "Phones"},
		},
		{
			name: "error: duplicate name",
			req:  &model.CategoryRequest{Name: "Phones"},
			mockCall: func(repo *categorymocks.CategoryRepository) {
				repo.On("GetByName", mock.Anything, "Phones").Return(&model.CategoryEntity{ID: 4, Name: "Phones"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := categorymocks.NewCategoryRepository(t)
			tt.mockCall(repo)

			got, err := appcategory.NewCategoryApp(zap.NewNop(), repo).CreateCategory(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateCategory() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("CreateCategory() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCategoryApp_GetCategory_NotFound(t *testing.T) {
	repo := categorymocks.NewCategoryRepository(t)
	repo.On("GetByID", mock.Anything, uint64(8)).Return(nil, nil).Once()

	_, err := appcategory.NewCategoryApp(zap.NewNop(), repo).GetCategory(context.Background(), 8)
	if !errors.Is(err, cerr.SetCustomError(constant.ErrNotFound)) {
		t.Fatalf("GetCategory() error = %v, want not found", err)
	}
}

func TestCategoryApp_UpdateCategory_SameName(t *testing.T) {
	repo := categorymocks.NewCategoryRepository(t)
	name := "Phones"
	repo.On("GetByID", mock.Anything, uint64(4)).Return(&model.CategoryEntity{ID: 4, Name: name}, nil).Once()
	repo.On("Update", mock.Anything, &model.CategoryEntity{ID: 4, Name: name}).Return(nil).Once()

	got, err := appcategory.NewCategoryApp(zap.NewNop(), repo).
		UpdateCategory(context.Background(), 4, &model.UpdateCategoryRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateCategory() error = %v", err)
	}
	if got.Name != name {
		t.Fatalf("UpdateCategory() = %+v", got)
	}
	repo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}
