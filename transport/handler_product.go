package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// ListProducts handler
// @Summary List products with comments
// @Tags Products
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.ProductDetail
// @Router /products/all [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context(), &model.ProductFilter{}, parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListProductsByCategory handler
// @Summary List products of a category
// @Tags Products
// @Produce json
// @Param id path int true "Category ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.ProductDetail
// @Router /products/category/{id} [get]
func (s *RestHandler) ListProductsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.ListProducts(r.Context(), &model.ProductFilter{CategoryID: id}, parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetProduct handler
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} model.ProductDetail
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *RestHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateProduct handler
// @Summary Create product
// @Description The caller becomes the product's author
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProductRequest true "Product"
// @Success 201 {object} model.ProductEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /products [post]
func (s *RestHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.ProductApp.CreateProduct(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateProduct handler
// @Summary Update product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body model.UpdateProductRequest true "Fields to change"
// @Success 200 {object} model.ProductEntity
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [patch]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateProductRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.ProductApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteProduct handler
// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (s *RestHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.ProductApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "Product deleted"})
}
