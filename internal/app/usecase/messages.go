package usecase

import (
	"errors"
	"strings"

	"github.com/fardannozami/health-coach/internal/domain"
)

// Generic fallbacks shown when the backend gives no usable detail.
const (
	MsgRegisterFailed     = "Failed to register. Please try again."
	MsgLoadFailed         = "Failed to load data. Please try again."
	MsgSubmitLogFailed    = "Failed to submit daily log. Please try again."
	MsgUploadFailed       = "Failed to upload report. Please try again."
	MsgAnalyzeFailed      = "Failed to analyze report. Please check your API key and try again."
	MsgGeneratePlanFailed = "Failed to generate workout plan. Please check your API key and try again."
	MsgSearchFailed       = "Failed to search exercises. Please try again."
)

const (
	TitleIncomplete  = "Incomplete"
	TitleError       = "Error"
	TitleNotSignedIn = "Not registered"
	TitleSuccess     = "Success"
	TitleInProgress  = "Please wait"
)

// Dialog maps err to the title and text shown to the user. Local
// validation errors show their own text; backend errors show the server
// detail when there is one, else fallback. The message is never empty.
func Dialog(err error, fallback string) (title, message string) {
	switch {
	case errors.Is(err, domain.ErrIncomplete):
		return TitleIncomplete, err.Error()
	case errors.Is(err, domain.ErrNotRegistered):
		return TitleNotSignedIn, err.Error()
	case errors.Is(err, domain.ErrBusy):
		return TitleInProgress, err.Error()
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidChoice),
		errors.Is(err, domain.ErrCredentialRequired),
		errors.Is(err, domain.ErrNoFileSelected),
		errors.Is(err, domain.ErrNotPDF),
		errors.Is(err, domain.ErrLogoutNotConfirmed):
		return TitleError, err.Error()
	}
	return TitleError, UserMessage(err, fallback)
}

// UserMessage returns the backend's detail message carried by err, or
// fallback when there is none.
func UserMessage(err error, fallback string) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Detail) != "" {
		return apiErr.Detail
	}
	return fallback
}
