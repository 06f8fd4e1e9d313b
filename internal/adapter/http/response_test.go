package httpadapter

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"salina-hive/internal/core/domain"
)

func TestStatusFor(t *testing.T) {
	tests := map[domain.Code]int{
		domain.CodeTitleTooLong:           http.StatusBadRequest,
		domain.CodeDescriptionTooLong:     http.StatusBadRequest,
		domain.CodeURLTooLong:             http.StatusBadRequest,
		domain.CodeInvalidAmount:          http.StatusBadRequest,
		domain.CodeDeadlineInPast:         http.StatusBadRequest,
		domain.CodeInvalidFee:             http.StatusBadRequest,
		domain.CodeUnauthorized:           http.StatusForbidden,
		domain.CodeNotFound:               http.StatusNotFound,
		domain.CodePlatformNotInitialized: http.StatusNotFound,
		domain.CodeAlreadyInitialized:     http.StatusConflict,
		domain.CodeCampaignDeleted:        http.StatusConflict,
		domain.CodeWithdrawNotAllowed:     http.StatusConflict,
		domain.CodeConflict:               http.StatusConflict,
		domain.CodeCampaignCountExhausted: http.StatusConflict,
		domain.CodeInsufficientFunds:      http.StatusUnprocessableEntity,
		domain.CodePlatformMismatch:       http.StatusUnprocessableEntity,
		domain.CodeUnknown:                http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, statusFor(code), code)
	}
}
