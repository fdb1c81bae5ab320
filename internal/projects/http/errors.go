package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tracklane/project-tracker-backend/internal/projects/domain"
	"github.com/tracklane/project-tracker-backend/internal/projects/repository"
)

// writeError translates a domain or store error into the response contract.
// Cancellation is never reported as a server error; the client is gone.
func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.Abort()
		return
	}

	var (
		notFound          *domain.NotFoundError
		nameExists        *domain.NameExistsError
		invalidState      *domain.InvalidStateError
		invalidTransition *domain.InvalidTransitionError
		unavailable       *repository.ConnectionError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Detail:    notFound.Error(),
			ErrorData: map[string]any{"project_id": notFound.ID},
		})

	case errors.As(err, &nameExists):
		c.JSON(http.StatusConflict, ErrorResponse{
			Detail:    nameExists.Error(),
			ErrorData: map[string]any{"name": nameExists.Name},
		})

	case errors.As(err, &invalidState):
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: invalidState.Error()})

	case errors.As(err, &invalidTransition):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Detail: invalidTransition.Error(),
			ErrorData: map[string]any{
				"from": string(invalidTransition.From),
				"to":   string(invalidTransition.To),
			},
		})

	case errors.Is(err, domain.ErrInvalidName):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Detail: "Validation error",
			Errors: []ValidationIssue{{Loc: "body.name", Msg: err.Error(), Type: "value_error"}},
		})

	case errors.Is(err, domain.ErrInvalidDescription):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Detail: "Validation error",
			Errors: []ValidationIssue{{Loc: "body.description", Msg: err.Error(), Type: "value_error"}},
		})

	case errors.As(err, &unavailable):
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("store unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "Service unavailable."})

	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error."})
	}
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Detail: "Validation error",
		Errors: []ValidationIssue{{Loc: "body", Msg: err.Error(), Type: "value_error"}},
	})
}
