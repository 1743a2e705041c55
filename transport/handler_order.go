package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// ListMyOrders handler
// @Summary List the caller's orders
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.OrderDetail
// @Router /order/my-orders [get]
func (s *RestHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.OrderApp.ListMyOrders(r.Context(), userID, parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Place an order
// @Description Orders count pieces of every listed product
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.OrderRequest true "Order"
// @Success 201 {object} model.OrderDetail
// @Failure 400 {object} ErrorResponse
// @Router /order [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req model.OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.OrderApp.CreateOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// GetOrder handler
// @Summary Get order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.OrderDetail
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [get]
func (s *RestHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateOrder handler
// @Summary Reassign order
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderRequest true "Fields to change"
// @Success 200 {object} model.OrderEntity
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [patch]
func (s *RestHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateOrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.OrderApp.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteOrder handler
// @Summary Delete order
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /order/{id} [delete]
func (s *RestHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.OrderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "Order deleted"})
}
