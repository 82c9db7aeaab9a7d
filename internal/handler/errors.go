package handler

import (
	"errors"
	"net/http"

	"linkloud/internal/domain"
	"linkloud/internal/httputil"
)

// handleError maps domain errors to RFC 7807 responses. Cap and
// position failures carry extra fields so the client can correct its
// state; anything unrecognized is an opaque 500.
func handleError(w http.ResponseWriter, err error) {
	var capErr *domain.CapacityError
	if errors.As(err, &capErr) {
		httputil.RespondErrorWithExtras(w, capErr.StatusCode(), capErr.Error(), map[string]interface{}{
			"count": capErr.Count,
			"limit": capErr.Limit,
		})
		return
	}

	var posErr *domain.PositionError
	if errors.As(err, &posErr) {
		httputil.RespondErrorWithExtras(w, posErr.StatusCode(), posErr.Error(), map[string]interface{}{
			"requested": posErr.Requested,
			"count":     posErr.Count,
		})
		return
	}

	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
