package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

// LecturerController handles the lecturer pages
type LecturerController struct {
	lecturerService *services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService *services.LecturerService) *LecturerController {
	return &LecturerController{lecturerService: lecturerService}
}

// ListLecturers renders all lecturers ordered by id
func (lc *LecturerController) ListLecturers(ctx *gin.Context) {
	lecturers, err := lc.lecturerService.ListLecturers(ctx)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "lecturers.html", dto.LecturerListView{Lecturers: lecturers})
}

// DeleteLecturer deletes an unassigned lecturer and returns to the list.
// An assigned lecturer is kept and the refusal page is shown instead.
func (lc *LecturerController) DeleteLecturer(ctx *gin.Context) {
	lid := ctx.Param("lid")

	if _, err := lc.lecturerService.DeleteLecturer(ctx, lid); err != nil {
		if errors.Is(err, apperrors.ErrLecturerAssigned) {
			ctx.HTML(http.StatusOK, "deleteLecturer.html", dto.DeleteLecturerView{LID: lid})
			return
		}
		middleware.HandleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/lecturers")
}
