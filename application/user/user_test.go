package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	appuser "github.com/muhammadheryan/storefront/application/user"
	"github.com/muhammadheryan/storefront/constant"
	usermocks "github.com/muhammadheryan/storefront/mocks/repository/user"
	"github.com/muhammadheryan/storefront/model"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestUserApp_CreateUser(t *testing.T) {
	req := &model.CreateUserRequest{
		Name:     "Seller",
		Email:    "seller@example.com",
		Phone:    "998901234567",
		Password: "password123",
		Role:     constant.RoleSeller,
		Year:     1990,
		RegionID: 1,
	}

	tests := []struct {
		name     string
		req      *model.CreateUserRequest
		mockCall func(repo *usermocks.UserRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: admin-created account is active",
			req:  req,
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				repo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
					return ent.Status == constant.UserStatusActive &&
						ent.Role == constant.RoleSeller &&
						bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(req.Password)) == nil
				})).
					Return(&model.UserEntity{ID: 2, Email: req.Email, Role: constant.RoleSeller, Status: constant.UserStatusActive}, nil).
					Once()
			},
		},
		{
			name: "error: email already registered",
			req:  req,
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).
					Return(&model.UserEntity{ID: 1, Email: req.Email}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: duplicate key from a concurrent insert",
			req:  req,
			mockCall: func(repo *usermocks.UserRepository) {
				repo.On("Get", mock.Anything, &model.UserFilter{Email: req.Email}).Return(nil, nil).Once()
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, &mysql.MySQLError{Number: 1062}).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := usermocks.NewUserRepository(t)
			tt.mockCall(repo)

			got, err := appuser.NewUserApp(zap.NewNop(), repo).CreateUser(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateUser() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Status != constant.UserStatusActive {
				t.Fatalf("CreateUser() status = %s, want active", got.Status)
			}
		})
	}
}

func TestUserApp_UpdateUser(t *testing.T) {
	existing := func() *model.UserEntity {
		return &model.UserEntity{ID: 5, Name: "Old", Email: "old@example.com", PasswordHash: "old-hash", Role: constant.RoleBuyer, Status: constant.UserStatusActive, RegionID: 1}
	}

	t.Run("success: only given fields change and a new password is hashed", func(t *testing.T) {
		repo := usermocks.NewUserRepository(t)
		name, password := "New", "secret99"
		repo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(existing(), nil).Once()
		repo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
			return ent.Name == "New" &&
				ent.Email == "old@example.com" &&
				ent.Role == constant.RoleBuyer &&
				bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte(password)) == nil
		})).Return(nil).Once()

		if _, err := appuser.NewUserApp(zap.NewNop(), repo).
			UpdateUser(context.Background(), 5, &model.UpdateUserRequest{Name: &name, Password: &password}); err != nil {
			t.Fatalf("UpdateUser() error = %v", err)
		}
	})

	t.Run("error: email taken by another account", func(t *testing.T) {
		repo := usermocks.NewUserRepository(t)
		email := "taken@example.com"
		repo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(existing(), nil).Once()
		repo.On("Get", mock.Anything, &model.UserFilter{Email: email}).Return(&model.UserEntity{ID: 6}, nil).Once()

		_, err := appuser.NewUserApp(zap.NewNop(), repo).
			UpdateUser(context.Background(), 5, &model.UpdateUserRequest{Email: &email})
		if !errors.Is(err, cerr.SetCustomError(constant.ErrConflict)) {
			t.Fatalf("UpdateUser() error = %v, want conflict", err)
		}
	})

	t.Run("error: not found", func(t *testing.T) {
		repo := usermocks.NewUserRepository(t)
		repo.On("Get", mock.Anything, &model.UserFilter{ID: 5}).Return(nil, nil).Once()

		_, err := appuser.NewUserApp(zap.NewNop(), repo).UpdateUser(context.Background(), 5, &model.UpdateUserRequest{})
		if !errors.Is(err, cerr.SetCustomError(constant.ErrNotFound)) {
			t.Fatalf("UpdateUser() error = %v, want not found", err)
		}
	})
}

func TestUserApp_ListUsersByRegion(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	page := model.NewPage(5, 1)
	repo.On("List", mock.Anything, &model.UserFilter{RegionID: 3}, page).Return(nil, nil).Once()

	got, err := appuser.NewUserApp(zap.NewNop(), repo).ListUsersByRegion(context.Background(), 3, page)
	if err != nil {
		t.Fatalf("ListUsersByRegion() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("ListUsersByRegion() = %#v, want empty slice", got)
	}
}

func TestUserApp_GetUser(t *testing.T) {
	repo := usermocks.NewUserRepository(t)
	repo.On("Get", mock.Anything, &model.UserFilter{ID: 8}).Return(&model.UserEntity{ID: 8, Name: "Buyer"}, nil).Once()
	repo.On("Get", mock.Anything, &model.UserFilter{ID: 9}).Return(nil, nil).Once()
	app := appuser.NewUserApp(zap.NewNop(), repo)

	got, err := app.GetUser(context.Background(), 8)
	if err != nil || got.Name != "Buyer" {
		t.Fatalf("GetUser(8) = %+v, %v", got, err)
	}

	if _, err := app.GetUser(context.Background(), 9); !errors.Is(err, cerr.SetCustomError(constant.ErrNotFound)) {
		t.Fatalf("GetUser(9) error = %v, want not found", err)
	}
}
