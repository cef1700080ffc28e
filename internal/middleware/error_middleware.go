package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kdattani/gradebook/internal/app/models/dto"
	"github.com/kdattani/gradebook/internal/pkg/apperrors"
	"github.com/kdattani/gradebook/internal/pkg/logger"
)

// HandleAPIError translates service errors into the standard error
// envelope. Typed grading errors keep their exact message and carry the
// module's display name in the details payload; everything else is
// dispatched on the sentinel it wraps.
func HandleAPIError(c *gin.Context, err error) {
	// Grading errors carry a payload, so match the concrete type first.
	var notRegistered *apperrors.NotRegisteredError
	if errors.As(err, &notRegistered) {
		detail := dto.NewErrorDetail(dto.ErrorCodeNotRegistered, notRegistered.Error()).
			WithDetails(map[string]string{"module": notRegistered.ModuleName})
		c.JSON(http.StatusConflict, dto.NewErrorAPIResponse(detail))
		return
	}

	var noGrade *apperrors.NoGradeRecordedError
	if errors.As(err, &noGrade) {
		detail := dto.NewErrorDetail(dto.ErrorCodeNoGradeRecorded, noGrade.Error()).
			WithDetails(map[string]string{"module": noGrade.ModuleName})
		c.JSON(http.StatusNotFound, dto.NewErrorAPIResponse(detail))
		return
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound, apperrors.ErrModuleNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrStudentAlreadyExists, apperrors.ErrModuleAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error())))
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrInvalidEmail, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")))
	}
}
