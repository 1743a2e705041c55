package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// ListCategories handler
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.CategoryEntity
// @Router /categories/all [get]
func (s *RestHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := s.CategoryApp.ListCategories(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetCategory handler
// @Summary Get category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (s *RestHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CategoryApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateCategory handler
// @Summary Create category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CategoryRequest true "Category"
// @Success 201 {object} model.CategoryEntity
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (s *RestHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CategoryApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateCategory handler
// @Summary Update category
// @Tags Categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body model.UpdateCategoryRequest true "Fields to change"
// @Success 200 {object} model.CategoryEntity
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [patch]
func (s *RestHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateCategoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CategoryApp.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteCategory handler
// @Summary Delete category with its products
// @Tags Categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [delete]
func (s *RestHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.CategoryApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "Category deleted"})
}
