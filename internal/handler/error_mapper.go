package handler

import (
	"errors"

	"github.com/nexthire/api/internal/model"
	"github.com/nexthire/api/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrEmailRequired):
		return model.NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrInvalidJobID):
		return model.NewBadRequestError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrJobNotFound):
		return model.NewNotFoundError("job")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}
