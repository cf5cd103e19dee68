package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hszk-dev/vidtube/internal/domain/model"
	"github.com/hszk-dev/vidtube/internal/domain/repository"
	"github.com/hszk-dev/vidtube/internal/usecase"
)

// SuccessResponse is the uniform success envelope.
type SuccessResponse struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// JSON writes data wrapped in the success envelope.
func JSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(SuccessResponse{
		StatusCode: status,
		Data:       data,
		Message:    message,
	}); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Error maps err to an HTTP status and writes the error envelope.
func Error(w http.ResponseWriter, err error) {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details never leave the service
		message = http.StatusText(http.StatusInternalServerError)
	}

	writeError(w, status, message)
}

// BadRequest writes a 400 error envelope with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		StatusCode: status,
		Message:    message,
	})
}

// statusFor translates domain and usecase errors into HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrVideoNotFound),
		errors.Is(err, repository.ErrCommentNotFound),
		errors.Is(err, repository.ErrTweetNotFound),
		errors.Is(err, repository.ErrPlaylistNotFound),
		errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrLikeNotFound),
		errors.Is(err, repository.ErrSubscriptionNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrNotOwner):
		return http.StatusUnauthorized

	case errors.Is(err, repository.ErrDuplicateReaction):
		return http.StatusConflict

	case errors.Is(err, usecase.ErrEmptySearchQuery),
		errors.Is(err, usecase.ErrMissingMedia),
		errors.Is(err, repository.ErrInvalidPage),
		errors.Is(err, model.ErrEmptyTitle),
		errors.Is(err, model.ErrEmptyDescription),
		errors.Is(err, model.ErrTitleTooLong),
		errors.Is(err, model.ErrEmptyContent),
		errors.Is(err, model.ErrEmptyName),
		errors.Is(err, model.ErrInvalidOwner),
		errors.Is(err, model.ErrInvalidActor),
		errors.Is(err, model.ErrInvalidTarget),
		errors.Is(err, model.ErrInvalidTargetKind),
		errors.Is(err, model.ErrSelfSubscription):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
