package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pharmacy-records/pkg/apperror"
	"pharmacy-records/pkg/response"

	"github.com/gorilla/mux"
)

// errorBody is the client-visible part of an AppError.
type errorBody struct {
	Code       string `json:"code"`
	Entity     string `json:"entity,omitempty"`
	Key        string `json:"key,omitempty"`
	Constraint string `json:"constraint,omitempty"`
}

// writeError maps usecase errors onto HTTP statuses. Anything that is not an
// AppError is reported as a 500 with the fallback message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		response.InternalServerError(w, fallback)
		return
	}

	body := errorBody{
		Code:       appErr.Code.String(),
		Entity:     appErr.Entity,
		Key:        appErr.Key,
		Constraint: appErr.Constraint,
	}

	switch appErr.Code {
	case apperror.CodeNotFound:
		response.Error(w, http.StatusNotFound, appErr.Message, body)
	case apperror.CodeReferenceNotFound:
		response.UnprocessableEntity(w, appErr.Message, body)
	case apperror.CodeInvariantViolation:
		response.Conflict(w, appErr.Message, body)
	case apperror.CodeConstraintViolation:
		// The driver error stays in the logs.
		if appErr.Constraint == apperror.ConstraintUnique {
			response.Conflict(w, appErr.Message, body)
			return
		}
		response.UnprocessableEntity(w, appErr.Message, body)
	case apperror.CodeInvalidInput:
		response.Error(w, http.StatusBadRequest, appErr.Message, body)
	default:
		response.InternalServerError(w, fallback)
	}
}

func pathInt64(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) int {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
