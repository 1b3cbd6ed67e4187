package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kanav2002/plagchecker/internal/app/models/dto"
	"github.com/kanav2002/plagchecker/internal/pkg/apperrors"
	"github.com/kanav2002/plagchecker/internal/pkg/logger"
)

// HandleAPIError converts service errors into the standard error envelope.
// Used by the course and exam endpoints; the instructor endpoints carry their
// own fixed wire contract.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInstructorNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Instructor not found")
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Course not found")
	case errors.Is(err, apperrors.ErrExamNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Exam not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrCourseCodeAlreadyExists),
		errors.Is(err, apperrors.ErrUsernameAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, err.Error())
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error())
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		respondError(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "An error occurred while processing your request")
	}
}

func respondError(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}
