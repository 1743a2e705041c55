package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/errors"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, data)
}

// writeError renders a CustomError with its catalogue status. Anything else
// is reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

// decodeAndValidate reads a JSON body into dst and validates it. Unknown
// fields are rejected.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "invalid request body")
	}
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.SetCustomErrorDetail(constant.ErrInvalidRequest, validatorx.FirstError(err))
	}
	return nil
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomErrorDetail(constant.ErrInvalidRequest, "id is invalid")
	}
	return id, nil
}

// parsePage reads the limit and offset query parameters. offset is a
// 1-based page number.
func parsePage(r *http.Request) model.Page {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	page, _ := strconv.Atoi(q.Get("offset"))
	return model.NewPage(limit, page)
}
