package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps service errors to HTTP statuses. Anything that is not a
// known sentinel stays a 500 with a generic message so internals do not leak.
func respondError[T any](w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInsufficientBalance):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = err.Error()
	}

	logError(r, err, nil)
	writeJSON(w, status, commons.ErrorResponse[T](message))
}

func parsePagination(query url.Values) commons.Pagination {
	var pagination commons.Pagination
	if raw := query.Get("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil && offset > 0 {
			pagination.Offset = offset
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			pagination.Limit = limit
		}
	}
	return pagination
}

func parseDateRange(query url.Values) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, query.Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start must be in RFC3339 format")
	}
	end, err := time.Parse(time.RFC3339, query.Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end must be in RFC3339 format")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end cannot be before start")
	}
	return start, end, nil
}

// registerWith wires every pattern through the auth middleware when one is set.
func registerWith(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) func(pattern string, handler http.HandlerFunc) {
	return func(pattern string, handler http.HandlerFunc) {
		var h http.Handler = handler
		if authMiddleware != nil {
			h = authMiddleware(h)
		}
		mux.Handle(pattern, h)
	}
}
