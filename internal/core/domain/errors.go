package domain

import "errors"

// Code is a stable, machine-readable error identifier surfaced to callers.
type Code string

const (
	CodeTitleTooLong           Code = "TitleTooLong"
	CodeDescriptionTooLong     Code = "DescriptionTooLong"
	CodeURLTooLong             Code = "UrlTooLong"
	CodeInvalidAmount          Code = "InvalidAmount"
	CodeDeadlineInPast         Code = "DeadlineInPast"
	CodeInvalidFee             Code = "InvalidFee"
	CodeUnauthorized           Code = "Unauthorized"
	CodeCampaignDeleted        Code = "CampaignDeleted"
	CodeWithdrawNotAllowed     Code = "WithdrawNotAllowed"
	CodeAlreadyInitialized     Code = "AlreadyInitialized"
	CodePlatformNotInitialized Code = "PlatformNotInitialized"
	CodePlatformMismatch       Code = "PlatformMismatch"
	CodeCampaignCountExhausted Code = "CampaignCountExhausted"
	CodeInsufficientFunds      Code = "InsufficientFunds"
	CodeNotFound               Code = "NotFound"
	CodeConflict               Code = "Conflict"
	CodeUnknown                Code = "Unknown"
)

// Error is a typed rejection of a whole operation.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// Validation
	ErrTitleTooLong       = &Error{Code: CodeTitleTooLong, Message: "title too long"}
	ErrDescriptionTooLong = &Error{Code: CodeDescriptionTooLong, Message: "description too long"}
	ErrURLTooLong         = &Error{Code: CodeURLTooLong, Message: "url too long"}
	ErrInvalidAmount      = &Error{Code: CodeInvalidAmount, Message: "amount must be greater than zero"}
	ErrDeadlineInPast     = &Error{Code: CodeDeadlineInPast, Message: "deadline must be in the future"}
	ErrInvalidFee         = &Error{Code: CodeInvalidFee, Message: "fee must be between 0 and 10000 basis points"}

	// Authorization
	ErrUnauthorized = &Error{Code: CodeUnauthorized, Message: "caller is not allowed to perform this operation"}

	// State
	ErrCampaignDeleted        = &Error{Code: CodeCampaignDeleted, Message: "campaign already deleted"}
	ErrWithdrawNotAllowed     = &Error{Code: CodeWithdrawNotAllowed, Message: "goal not reached or deadline not passed"}
	ErrAlreadyInitialized     = &Error{Code: CodeAlreadyInitialized, Message: "platform already initialized"}
	ErrPlatformNotInitialized = &Error{Code: CodePlatformNotInitialized, Message: "platform not initialized"}
	ErrPlatformMismatch       = &Error{Code: CodePlatformMismatch, Message: "campaign does not belong to platform"}
	ErrCampaignCountExhausted = &Error{Code: CodeCampaignCountExhausted, Message: "campaign counter exhausted"}

	// Store
	ErrInsufficientFunds = &Error{Code: CodeInsufficientFunds, Message: "insufficient funds"}
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "not found"}
	ErrConflict          = &Error{Code: CodeConflict, Message: "conflicting transaction, resubmit"}
)

// ErrorCode extracts the code from any error. Errors outside the domain
// taxonomy report CodeUnknown.
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}
