package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"salina-hive/internal/core/domain"
)

// Transport-level error codes. Domain rejections use domain.Code values.
const (
	codeBadRequest      = "BadRequest"
	codeUnauthenticated = "Unauthenticated"
	codeInternal        = "Internal"
)

var (
	errMissingCaller = errors.New("missing " + CallerHeader + " header")
	errInvalidCaller = errors.New("invalid " + CallerHeader + " header")
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFor maps a domain error code onto an HTTP status.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeTitleTooLong, domain.CodeDescriptionTooLong, domain.CodeURLTooLong,
		domain.CodeInvalidAmount, domain.CodeDeadlineInPast, domain.CodeInvalidFee:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusForbidden
	case domain.CodeNotFound, domain.CodePlatformNotInitialized:
		return http.StatusNotFound
	case domain.CodeAlreadyInitialized, domain.CodeCampaignDeleted, domain.CodeWithdrawNotAllowed,
		domain.CodeConflict, domain.CodeCampaignCountExhausted:
		return http.StatusConflict
	case domain.CodeInsufficientFunds, domain.CodePlatformMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// encoding should rarely fail; the status line is already sent
		h.logger.Error("encode response error",
			slog.Any("error", err),
			slog.String("request_id", RequestIDFromContext(r.Context())))
	}
}

// writeError renders err as an error body. Domain rejections keep their
// code and message, anything else is logged and reported as Internal.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	if code == domain.CodeUnknown {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
			slog.String("request_id", RequestIDFromContext(r.Context())))
		h.writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: codeInternal, Message: "internal error"})
		return
	}
	h.writeJSON(w, r, statusFor(code), errorResponse{Error: string(code), Message: err.Error()})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: codeBadRequest, Message: msg})
}

func (h *Handler) unauthenticated(w http.ResponseWriter, r *http.Request, err error) {
	h.writeJSON(w, r, http.StatusUnauthorized, errorResponse{Error: codeUnauthenticated, Message: err.Error()})
}
