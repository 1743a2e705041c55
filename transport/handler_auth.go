package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// Register handler
// @Summary Register user
// @Description Create a pending account and e-mail a verification code
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Verify handler
// @Summary Verify account
// @Description Activate an account with the code sent by e-mail
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.VerifyRequest true "Verify Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/verify [post]
func (s *RestHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Verify(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive an access and refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RefreshAccessToken handler
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RefreshRequest true "Refresh Request"
// @Success 200 {object} model.AccessTokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/access-token [post]
func (s *RestHandler) RefreshAccessToken(w http.ResponseWriter, r *http.Request) {
	var req model.RefreshRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.AuthApp.RefreshAccessToken(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAuthUser handler
// @Summary Get user by id
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} model.UserEntity
// @Failure 404 {object} ErrorResponse
// @Router /auth/{id} [get]
func (s *RestHandler) GetAuthUser(w http.ResponseWriter, r *http.Request) {
	s.GetUser(w, r)
}
