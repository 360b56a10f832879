package handlers

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/moodtrack/backend/internal/apierror"
	"github.com/JonnyWalker81/moodtrack/backend/internal/logger"
	"github.com/JonnyWalker81/moodtrack/backend/internal/models"
	"github.com/JonnyWalker81/moodtrack/backend/internal/repository"
)

// retryAfterSeconds is advertised on 503 responses
const retryAfterSeconds = 5

// writeError maps a service error onto a problem response. resource and id
// describe what a NotFound refers to.
func writeError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)
	log := logger.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case errors.Is(err, repository.ErrValidation):
		apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Please check your input and try again"))
	case errors.Is(err, repository.ErrLimitExceeded):
		apierror.WriteProblem(c, apierror.NewLimitExceededError(requestID, c.Param("date"), models.MaxMoodsPerDay))
	case errors.Is(err, repository.ErrUpstream), errors.Is(err, context.DeadlineExceeded):
		log.Error("upstream failure", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewServiceUnavailableError(requestID, retryAfterSeconds))
	default:
		log.Error("unexpected error", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
	_ = c.Error(err)
}

// writeBindError reports a query or body binding failure
func writeBindError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)
	if fields := apierror.FieldErrorsFrom(err); fields != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fields))
		return
	}
	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "The request could not be read"))
}
