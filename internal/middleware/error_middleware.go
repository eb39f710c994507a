package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// ErrorTemplate is the name of the view every error page is rendered with
const ErrorTemplate = "error.html"

// HandleError renders the error page matching err:
// not found errors give 404, malformed requests 400 and everything else 500.
func HandleError(c *gin.Context, err error) {
	_ = c.Error(err)

	var view dto.ErrorView
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrStudentNotFound, apperrors.ErrLecturerNotFound):
		view = dto.ErrorView{
			Status:  http.StatusNotFound,
			Code:    dto.ErrorCodeResourceNotFound,
			Title:   "Not Found",
			Message: err.Error(),
		}
	case apperrors.Is(err, apperrors.ErrBadRequest):
		view = dto.ErrorView{
			Status:  http.StatusBadRequest,
			Code:    dto.ErrorCodeBadRequest,
			Title:   "Bad Request",
			Message: err.Error(),
		}
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestID", GetRequestID(c)).
			Msg("Request failed")
		view = http500()
	}

	renderError(c, view)
}

// NotFound renders the 404 page for unmatched routes
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleError(c, apperrors.NewResourceNotFoundError("The page "+c.Request.URL.Path+" was not found"))
	}
}

func http500() dto.ErrorView {
	return dto.ErrorView{
		Status:  http.StatusInternalServerError,
		Code:    dto.ErrorCodeInternalServer,
		Title:   "Internal Server Error",
		Message: "Something went wrong while processing your request.",
	}
}

func renderError(c *gin.Context, view dto.ErrorView) {
	view.RequestID = GetRequestID(c)
	c.HTML(view.Status, ErrorTemplate, view)
}
