package transport

import (
	stderrors "errors"
	"net/http"
	"os"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	"go.uber.org/zap"
)

const uploadField = "rasm"

// Upload handler
// @Summary Upload a file
// @Description Store a single file and receive its public URL
// @Tags Files
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param rasm formData file true "File to upload"
// @Success 200 {object} model.UploadResponse
// @Failure 400 {object} ErrorResponse
// @Router /uploads [post]
func (s *RestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if s.Storage == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}
	if s.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadSize)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		writeError(w, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, uploadField+" is required"))
		return
	}
	defer file.Close()

	name, err := s.Storage.Save(header.Filename, file)
	if err != nil {
		s.Log.Error("[Upload] err Storage.Save", zap.Error(err))
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	writeSuccess(w, model.UploadResponse{
		URL: strings.TrimRight(s.PublicBaseURL, "/") + "/image/" + name,
	})
}

// ServeImage handler
// @Summary Download an uploaded file
// @Tags Files
// @Produce octet-stream
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /image/{filename} [get]
func (s *RestHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	if s.Storage == nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	path, err := s.Storage.Path(mux.Vars(r)["filename"])
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		writeError(w, errors.SetCustomError(constant.ErrNotFound))
		return
	}
	http.ServeFile(w, r, path)
}
