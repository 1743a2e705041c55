package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// ListUsers handler
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.UserDetail
// @Router /users/all [get]
func (s *RestHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	res, err := s.UserApp.ListUsers(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListUsersByRegion handler
// @Summary List users of a region
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.UserDetail
// @Router /users/byregion/{id} [get]
func (s *RestHandler) ListUsersByRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.UserApp.ListUsersByRegion(r.Context(), id, parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetUser handler
// @Summary Get user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (s *RestHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.UserApp.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateUser handler
// @Summary Create an active user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CreateUserRequest true "User"
// @Success 201 {object} model.UserEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (s *RestHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.UserApp.CreateUser(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateUser handler
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body model.UpdateUserRequest true "Fields to change"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [patch]
func (s *RestHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateUserRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.UserApp.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteUser handler
// @Summary Delete user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func (s *RestHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.UserApp.DeleteUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "User deleted"})
}
