package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/CHAITANYA-2002/city-trail/internal/domain"
)

// ErrorResponse is the JSON error envelope for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respond writes v as a JSON response body with the given status.
func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response failed", "error", err)
	}
}

// writeError maps domain sentinel errors to HTTP statuses. Anything
// unrecognized is a 500 with the detail kept out of the response body.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respond(w, http.StatusNotFound, ErrorResponse{ErrorDetail{"not_found", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrValidation):
		respond(w, http.StatusUnprocessableEntity, ErrorResponse{ErrorDetail{"validation_error", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrPrecondition):
		respond(w, http.StatusConflict, ErrorResponse{ErrorDetail{"precondition_failed", unwrapMessage(err)}})
	case errors.Is(err, domain.ErrSearchPending):
		respond(w, http.StatusTooManyRequests, ErrorResponse{ErrorDetail{"search_pending", "a search is already running"}})
	default:
		slog.Error("internal error", "error", err)
		respond(w, http.StatusInternalServerError, ErrorResponse{ErrorDetail{"internal_error", "internal server error"}})
	}
}

// badRequest writes a 400 for requests rejected before reaching the service
// layer (missing or malformed body, unparseable parameters).
func badRequest(w http.ResponseWriter, message string) {
	respond(w, http.StatusBadRequest, ErrorResponse{ErrorDetail{"bad_request", message}})
}

// unwrapMessage strips the "service.TripService.Op: " style prefixes from a
// wrapped sentinel error, leaving the human-readable tail.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		tail := msg[i+2:]
		// The sentinel text itself is the least useful part; prefer the
		// clause before it when the error was wrapped with %w at the end.
		switch tail {
		case domain.ErrNotFound.Error(), domain.ErrValidation.Error(),
			domain.ErrPrecondition.Error(), domain.ErrSearchPending.Error():
			parts := strings.Split(msg[:i], ": ")
			return parts[len(parts)-1]
		}
		return tail
	}
	return msg
}
