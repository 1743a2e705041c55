package order

import (
	"context"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	orderrepo "github.com/muhammadheryan/storefront/repository/order"
	txrepo "github.com/muhammadheryan/storefront/repository/tx"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"go.uber.org/zap"
)

type OrderApp interface {
	CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderDetail, error)
	ListMyOrders(ctx context.Context, userID uint64, page model.Page) ([]model.OrderDetail, error)
	GetOrder(ctx context.Context, id uint64) (*model.OrderDetail, error)
	UpdateOrder(ctx context.Context, id uint64, req *model.UpdateOrderRequest) (*model.OrderEntity, error)
	DeleteOrder(ctx context.Context, id uint64) error
}

type orderAppImpl struct {
	log       *zap.Logger
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
}

func NewOrderApp(log *zap.Logger, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository) OrderApp {
	return &orderAppImpl{log: log, txRepo: txRepo, orderRepo: orderRepo}
}

// CreateOrder writes the order and one item per product, each with the same
// count, in a single transaction.
func (s *orderAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.OrderRequest) (*model.OrderDetail, error) {
	if len(req.ProductIDs) == 0 || req.Count < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		s.log.Error("[CreateOrder] begin tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, userID)
	if err != nil {
		s.log.Error("[CreateOrder] insert order", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, req.ProductIDs, req.Count); err != nil {
		if mysqlerr.IsInvalidReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "product_id does not exist")
		}
		s.log.Error("[CreateOrder] insert items", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		s.log.Error("[CreateOrder] commit tx", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	metrics.OrdersCreated.Inc()

	return s.GetOrder(ctx, orderID)
}

// ListMyOrders returns the caller's orders, newest first, with their items.
func (s *orderAppImpl) ListMyOrders(ctx context.Context, userID uint64, page model.Page) ([]model.OrderDetail, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, page)
	if err != nil {
		s.log.Error("[ListMyOrders] list orders", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.withItems(ctx, "[ListMyOrders]", orders)
}

func (s *orderAppImpl) GetOrder(ctx context.Context, id uint64) (*model.OrderDetail, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[GetOrder] get order", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	details, err := s.withItems(ctx, "[GetOrder]", []model.OrderEntity{*order})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *orderAppImpl) withItems(ctx context.Context, op string, orders []model.OrderEntity) ([]model.OrderDetail, error) {
	details := make([]model.OrderDetail, 0, len(orders))
	if len(orders) == 0 {
		return details, nil
	}

	ids := make([]uint64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	rows, err := s.orderRepo.ListItemsByOrderIDs(ctx, ids)
	if err != nil {
		s.log.Error(op+" list items", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byOrder := make(map[uint64][]model.OrderItemDetail, len(orders))
	for _, r := range rows {
		byOrder[r.OrderID] = append(byOrder[r.OrderID], model.OrderItemDetail{
			OrderItemEntity: model.OrderItemEntity{
				ID:        r.ID,
				OrderID:   r.OrderID,
				ProductID: r.ProductID,
				Count:     r.Count,
			},
			Product: model.ProductSummary{
				ID:    r.ProductID,
				Name:  r.ProductName,
				Price: r.ProductPrice,
				Img:   r.ProductImg,
			},
		})
	}
	for _, o := range orders {
		items := byOrder[o.ID]
		if items == nil {
			items = []model.OrderItemDetail{}
		}
		details = append(details, model.OrderDetail{OrderEntity: o, Items: items})
	}
	return details, nil
}

// UpdateOrder reassigns the order to another user.
func (s *orderAppImpl) UpdateOrder(ctx context.Context, id uint64, req *model.UpdateOrderRequest) (*model.OrderEntity, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[UpdateOrder] get order", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if req.UserID != nil {
		order.UserID = *req.UserID
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		if mysqlerr.IsInvalidReference(err) {
			return nil, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "user_id does not exist")
		}
		s.log.Error("[UpdateOrder] update order", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return order, nil
}

// DeleteOrder removes the order and its items.
func (s *orderAppImpl) DeleteOrder(ctx context.Context, id uint64) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("[DeleteOrder] get order", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		s.log.Error("[DeleteOrder] delete order", zap.Error(err))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
