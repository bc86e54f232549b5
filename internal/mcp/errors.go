package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/coursepulse/internal/domain/catalog"
	"github.com/ganot/coursepulse/internal/domain/engagement"
	"github.com/ganot/coursepulse/internal/domain/progress"
	"github.com/ganot/coursepulse/internal/repository"
	"github.com/go-playground/validator/v10"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	var dup *catalog.DuplicateIDError
	switch {
	case errors.As(err, &validationErrs):
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Field())
		}
		return &APIError{Code: "INVALID_INPUT", Message: "invalid arguments", Details: fields, RecoveryHint: "Check required arguments"}
	case errors.Is(err, engagement.ErrInvalidRange):
		return &APIError{Code: "INVALID_RANGE", Message: err.Error(), RecoveryHint: "Use one of 24h, 7d, 30d, 90d"}
	case errors.Is(err, progress.ErrInvalidInput), errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.As(err, &dup):
		return &APIError{
			Code:         "DUPLICATE_ID",
			Message:      "catalog contains duplicate ids",
			Details:      map[string]string{"kind": string(dup.Kind), "id": dup.ID},
			RecoveryHint: "Fix the catalog data before reporting",
		}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
