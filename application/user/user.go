package user

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error)
	GetUser(ctx context.Context, id uint64) (*model.UserEntity, error)
	ListUsers(ctx context.Context, page model.Page) ([]model.UserDetail, error)
	ListUsersByRegion(ctx context.Context, regionID uint64, page model.Page) ([]model.UserDetail, error)
	UpdateUser(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error)
	DeleteUser(ctx context.Context, id uint64) error
}

type UserAppImpl struct {
	log      *zap.Logger
	userRepo userrepo.UserRepository
}

func NewUserApp(log *zap.Logger, userRepo userrepo.UserRepository) UserApp {
	return &UserAppImpl{
		log:      log,
		userRepo: userRepo,
	}
}

// CreateUser adds an already verified account. Role defaults to buyer.
func (s *UserAppImpl) CreateUser(ctx context.Context, req *model.CreateUserRequest) (*model.UserEntity, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		s.log.Error("[CreateUser] err userRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("[CreateUser] err bcrypt.GenerateFromPassword", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	role := req.Role
	if role == "" {
		role = constant.RoleBuyer
	}

	user, err := s.userRepo.Create(ctx, &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       constant.UserStatusActive,
		RegionID:     req.RegionID,
		Year:         req.Year,
		Image:        req.Image,
	})
	if err != nil {
		return nil, s.writeError("[CreateUser] err userRepo.Create", err)
	}

	return user, nil
}

func (s *UserAppImpl) GetUser(ctx context.Context, id uint64) (*model.UserEntity, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		s.log.Error("[GetUser] err userRepo.Get", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user, nil
}

func (s *UserAppImpl) ListUsers(ctx context.Context, page model.Page) ([]model.UserDetail, error) {
	users, err := s.userRepo.List(ctx, &model.UserFilter{}, page)
	if err != nil {
		s.log.Error("[ListUsers] err userRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if users == nil {
		users = []model.UserDetail{}
	}
	return users, nil
}

func (s *UserAppImpl) ListUsersByRegion(ctx context.Context, regionID uint64, page model.Page) ([]model.UserDetail, error) {
	users, err := s.userRepo.List(ctx, &model.UserFilter{RegionID: regionID}, page)
	if err != nil {
		s.log.Error("[ListUsersByRegion] err userRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if users == nil {
		users = []model.UserDetail{}
	}
	return users, nil
}

// UpdateUser applies every non-nil field of req. A new password is hashed
// before it is stored.
func (s *UserAppImpl) UpdateUser(ctx context.Context, id uint64, req *model.UpdateUserRequest) (*model.UserEntity, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		other, err := s.userRepo.Get(ctx, &model.UserFilter{Email: *req.Email})
		if err != nil {
			s.log.Error("[UpdateUser] err userRepo.Get", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "email already registered")
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			s.log.Error("[UpdateUser] err bcrypt.GenerateFromPassword", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		user.PasswordHash = string(hashedPassword)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.RegionID != nil {
		user.RegionID = *req.RegionID
	}
	if req.Year != nil {
		user.Year = *req.Year
	}
	if req.Image != nil {
		user.Image = *req.Image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, s.writeError("[UpdateUser] err userRepo.Update", err)
	}
	return user, nil
}

// DeleteUser removes the account. Its comments and orders go with it.
func (s *UserAppImpl) DeleteUser(ctx context.Context, id uint64) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteUser] err userRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) writeError(op string, err error) error {
	switch {
	case mysqlerr.IsDuplicate(err):
		return errors.SetCustomErrorDetail(constant.ErrConflict, "email already registered")
	case mysqlerr.IsInvalidReference(err):
		return errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "region_id does not exist")
	}
	s.log.Error(op, zap.Error(err))
	return errors.SetCustomError(constant.ErrInternal)
}
