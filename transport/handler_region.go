package transport

import (
	"net/http"

	"github.com/muhammadheryan/storefront/model"
)

// ListRegions handler
// @Summary List regions with their users
// @Tags Regions
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param offset query int false "Page number, 1-based"
// @Success 200 {array} model.RegionDetail
// @Router /regions/all [get]
func (s *RestHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	res, err := s.RegionApp.ListRegions(r.Context(), parsePage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetRegion handler
// @Summary Get region
// @Tags Regions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Success 200 {object} model.RegionEntity
// @Failure 404 {object} ErrorResponse
// @Router /regions/{id} [get]
func (s *RestHandler) GetRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RegionApp.GetRegion(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CreateRegion handler
// @Summary Create region
// @Tags Regions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegionRequest true "Region"
// @Success 201 {object} model.RegionEntity
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /regions [post]
func (s *RestHandler) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var req model.RegionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RegionApp.CreateRegion(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

// UpdateRegion handler
// @Summary Update region
// @Tags Regions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Param request body model.UpdateRegionRequest true "Fields to change"
// @Success 200 {object} model.RegionEntity
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /regions/{id} [patch]
func (s *RestHandler) UpdateRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req model.UpdateRegionRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}
	res, err := s.RegionApp.UpdateRegion(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteRegion handler
// @Summary Delete region with its users
// @Tags Regions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Region ID"
// @Success 200 {object} model.MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /regions/{id} [delete]
func (s *RestHandler) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.RegionApp.DeleteRegion(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.MessageResponse{Message: "Region deleted"})
}
