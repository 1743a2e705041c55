package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
	utilsContext "github.com/muhammadheryan/storefront/utils/context"
)

// ListProductComments handler
// @Summary List comments of a product
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.CommentEntity
// @Router /comments/product/{id} [get]
func (s *RestHandler) ListProductComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CommentApp.ListProductComments(r.Context(), id, parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetComment handler
// @Summary Get comment
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} model.CommentEntity
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [get]
func (s *RestHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.CommentApp.GetComment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateComment handler
// @Summary Comment on a product
// @Description The caller becomes the comment's author
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.CommentRequest true "Comment"
// @Success 201 {object} model.CommentEntity
// @Failure 400 {object} ErrorResponse
// @Router /comments [post]
func (s *RestHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req model.CommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.CommentApp.CreateComment(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateComment handler
// @Summary Update own comment
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body model.UpdateCommentRequest true "Fields to change"
// @Success 200 {object} model.CommentEntity
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [patch]
func (s *RestHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateCommentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	res, err := s.CommentApp.UpdateComment(r.Context(), userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteComment handler
// @Summary Delete own comment
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{id} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())
	if err := s.CommentApp.DeleteComment(r.Context(), userID, id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "Comment deleted"})
}
