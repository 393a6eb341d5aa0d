package handler

import (
	"errors"
	"net/http"
	"strconv"

	errs "github.com/amirhossein-jamali/exchange-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/exchange-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/exchange-ledger/internal/infrastructure/adapter/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HTTPStatus maps a domain error to its HTTP status code
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyProcessed),
		errors.Is(err, errs.ErrDuplicateUser),
		errors.Is(err, errs.ErrDuplicateAsset):
		return http.StatusConflict
	case errors.Is(err, errs.ErrDatabaseConnection),
		errors.Is(err, errs.ErrDuplicateCorrelationCode):
		return http.StatusServiceUnavailable
	case errs.IsStorageError(err):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrInsufficientBalance),
		errors.Is(err, errs.ErrInsufficientSupply),
		errors.Is(err, errs.ErrNoHolding),
		errors.Is(err, errs.ErrInsufficientHolding):
		return http.StatusUnprocessableEntity
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response and logs server-side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := HTTPStatus(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"operation":  operation,
			"error":      err.Error(),
			"request_id": requestid.FromContext(c.Request.Context()),
		})
		message = "Internal server error"
		if status == http.StatusServiceUnavailable {
			message = "Service temporarily unavailable, retry later"
		}
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    errs.ErrorCode(err),
		Message: message,
	})
}

// respondBindError reports a malformed request body or query
func respondBindError(c *gin.Context, err error) {
	var details []string
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			details = append(details, fe.Field()+" failed on "+fe.Tag())
		}
	} else {
		details = append(details, err.Error())
	}

	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    errs.ErrorCode(errs.ErrInvalidRequest),
		Message: "Invalid request format",
		Details: details,
	})
}

// parseIDParam extracts a positive numeric path parameter
func parseIDParam(c *gin.Context, name string, invalid error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    errs.ErrorCode(invalid),
			Message: "Invalid " + name + " format",
		})
		return 0, false
	}
	return id, true
}

// actorID returns the caller parsed from the actor header; 0 when absent
func actorID(c *gin.Context) uint64 {
	id, _ := middleware.ActorIDFromContext(c)
	return id
}
