package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// GradeController handles the grades page
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// ListGrades renders every student's module results
func (gc *GradeController) ListGrades(ctx *gin.Context) {
	studentGrades, err := gc.gradeService.ListStudentGrades(ctx)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	modules, err := gc.gradeService.ListModules(ctx)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, "grades.html", dto.GradesView{StudentGrades: studentGrades, Modules: modules})
}
