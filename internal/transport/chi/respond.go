package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kailas-cloud/adscout/internal/domain"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeTitleNotFound    = "title_not_found"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// sentinelHandler maps a sentinel error to an HTTP status and code.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

var domainErrorHandlers = []errorHandler{
	sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
	sentinelHandler(domain.ErrTitleNotFound, http.StatusNotFound, codeTitleNotFound),
}

// handleDomainError walks the handler list, defaulting to 500.
func handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range domainErrorHandlers {
		if h(w, err) {
			return
		}
	}
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
