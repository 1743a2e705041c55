package region

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	regionrepo "github.com/muhammadheryan/storefront/repository/region"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
)

type RegionApp interface {
	CreateRegion(ctx context.Context, req *model.RegionRequest) (*model.RegionEntity, error)
	GetRegion(ctx context.Context, id uint64) (*model.RegionEntity, error)
	ListRegions(ctx context.Context, page model.Page) ([]model.RegionDetail, error)
	UpdateRegion(ctx context.Context, id uint64, req *model.UpdateRegionRequest) (*model.RegionEntity, error)
	DeleteRegion(ctx context.Context, id uint64) error
}

type regionAppImpl struct {
	log        *zap.Logger
	regionRepo regionrepo.RegionRepository
	userRepo   userrepo.UserRepository
}

func NewRegionApp(log *zap.Logger, regionRepo regionrepo.RegionRepository, userRepo userrepo.UserRepository) RegionApp {
	return &regionAppImpl{log: log, regionRepo: regionRepo, userRepo: userRepo}
}

func (s *regionAppImpl) CreateRegion(ctx context.Context, req *model.RegionRequest) (*model.RegionEntity, error) {
	existing, err := s.regionRepo.GetByName(ctx, req.Name)
	if err != nil {
		s.log.Error("[CreateRegion] err regionRepo.GetByName", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "region already exists")
	}

	region, err := s.regionRepo.Create(ctx, &model.RegionEntity{Name: req.Name})
	if err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "region already exists")
		}
		s.log.Error("[CreateRegion] err regionRepo.Create", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return region, nil
}

func (s *regionAppImpl) GetRegion(ctx context.Context, id uint64) (*model.RegionEntity, error) {
	region, err := s.regionRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[GetRegion] err regionRepo.GetByID", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if region == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return region, nil
}

// ListRegions returns a page of regions, each with the users living in it.
func (s *regionAppImpl) ListRegions(ctx context.Context, page model.Page) ([]model.RegionDetail, error) {
	regions, err := s.regionRepo.List(ctx, page)
	if err != nil {
		s.log.Error("[ListRegions] err regionRepo.List", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	result := make([]model.RegionDetail, 0, len(regions))
	if len(regions) == 0 {
		return result, nil
	}

	ids := make([]uint64, 0, len(regions))
	for _, r := range regions {
		ids = append(ids, r.ID)
	}
	users, err := s.userRepo.ListByRegionIDs(ctx, ids)
	if err != nil {
		s.log.Error("[ListRegions] err userRepo.ListByRegionIDs", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byRegion := make(map[uint64][]model.UserEntity, len(regions))
	for _, u := range users {
		byRegion[u.RegionID] = append(byRegion[u.RegionID], u)
	}
	for _, r := range regions {
		members := byRegion[r.ID]
		if members == nil {
			members = []model.UserEntity{}
		}
		result = append(result, model.RegionDetail{RegionEntity: r, Users: members})
	}
	return result, nil
}

func (s *regionAppImpl) UpdateRegion(ctx context.Context, id uint64, req *model.UpdateRegionRequest) (*model.RegionEntity, error) {
	region, err := s.GetRegion(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != region.Name {
		other, err := s.regionRepo.GetByName(ctx, *req.Name)
		if err != nil {
			s.log.Error("[UpdateRegion] err regionRepo.GetByName", zap.Error(err))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "region already exists")
		}
		region.Name = *req.Name
	}

	if err := s.regionRepo.Update(ctx, region); err != nil {
		if mysqlerr.IsDuplicate(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrConflict, "region already exists")
		}
		s.log.Error("[UpdateRegion] err regionRepo.Update", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return region, nil
}

// DeleteRegion removes the region together with its users and everything
// they own.
func (s *regionAppImpl) DeleteRegion(ctx context.Context, id uint64) error {
	if _, err := s.GetRegion(ctx, id); err != nil {
		return err
	}
	if err := s.regionRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteRegion] err regionRepo.Delete", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
