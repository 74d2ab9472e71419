package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "article not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "bad_request", Message: message}}
}

// unavailableBody is the generic 503 body. Store details are logged, never returned.
func unavailableBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "unavailable", Message: "service temporarily unavailable"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ArticleService.Create: validation error: title is required" → "title is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// requestError answers parameter binding and body decoding failures.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{
			Error: gen.ErrorDetail{Code: "payload_too_large", Message: "request body too large"},
		})
		return
	}
	var paramErr *gen.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		writeError(w, http.StatusBadRequest, requestBody("invalid "+paramErr.ParamName))
		return
	}
	writeError(w, http.StatusBadRequest, requestBody("malformed JSON body"))
}

// responseError answers errors a handler did not map to a response itself.
// Store outages become 503; anything else is a 500. Neither leaks the cause.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		s.logger.WarnContext(r.Context(), "store unavailable", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusServiceUnavailable, unavailableBody())
		return
	}
	s.logger.ErrorContext(r.Context(), "unhandled error", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, gen.ErrorResponse{
		Error: gen.ErrorDetail{Code: "internal_error", Message: "internal server error"},
	})
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
