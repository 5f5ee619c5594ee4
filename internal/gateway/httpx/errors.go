package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	catalogapp "github.com/vibevapes/storefront/internal/catalog/app"
	checkoutapp "github.com/vibevapes/storefront/internal/checkout/app"
	vibeapp "github.com/vibevapes/storefront/internal/vibe/app"
)

// httpStatusFromErr maps app-level errors onto HTTP status and error codes.
func httpStatusFromErr(err error) (int, string) {
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_ARGUMENT"
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, vibeapp.ErrUnknownSession):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return http.StatusConflict, "EMPTY_CART"
	case errors.Is(err, checkoutapp.ErrBusy):
		return http.StatusConflict, "CHECKOUT_IN_PROGRESS"
	case errors.Is(err, vibeapp.ErrQuizFinished):
		return http.StatusConflict, "QUIZ_FINISHED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}

func writeAppError(w http.ResponseWriter, err error) {
	status, code := httpStatusFromErr(err)
	writeError(w, status, code, err.Error())
}
