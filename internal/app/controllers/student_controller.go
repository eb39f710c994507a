package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

const (
	studentsTemplate      = "students.html"
	addStudentTemplate    = "addStudent.html"
	updateStudentTemplate = "updateStudent.html"
)

// StudentController handles the student pages
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// ListStudents renders all students ordered by sid
func (sc *StudentController) ListStudents(ctx *gin.Context) {
	students, err := sc.studentService.ListStudents(ctx)
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, studentsTemplate, dto.StudentListView{Students: students})
}

// ShowEditForm renders the edit form of an existing student
func (sc *StudentController) ShowEditForm(ctx *gin.Context) {
	student, err := sc.studentService.GetStudent(ctx, ctx.Param("sid"))
	if err != nil {
		middleware.HandleError(ctx, err)
		return
	}

	ctx.HTML(http.StatusOK, updateStudentTemplate, dto.StudentFormView{Student: student, Errors: []string{}})
}

// UpdateStudent applies the edit form; a rejected form is rendered again with the input and messages
func (sc *StudentController) UpdateStudent(ctx *gin.Context) {
	sid := ctx.Param("sid")

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleError(ctx, apperrors.NewBadRequestError("Invalid student data: "+err.Error()))
		return
	}

	if _, err := sc.studentService.UpdateStudent(ctx, sid, req); err != nil {
		if messages, ok := validationMessages(err); ok {
			ctx.HTML(http.StatusOK, updateStudentTemplate, dto.StudentFormView{Student: req.ToModel(sid), Errors: messages})
			return
		}
		middleware.HandleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/students")
}

// ShowAddForm renders an empty add form
func (sc *StudentController) ShowAddForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, addStudentTemplate, dto.StudentFormView{Student: &models.Student{}, Errors: []string{}})
}

// AddStudent applies the add form; a rejected form is rendered again with the input and messages
func (sc *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleError(ctx, apperrors.NewBadRequestError("Invalid student data: "+err.Error()))
		return
	}

	if _, err := sc.studentService.AddStudent(ctx, req); err != nil {
		if messages, ok := validationMessages(err); ok {
			ctx.HTML(http.StatusOK, addStudentTemplate, dto.StudentFormView{Student: req.ToModel(), Errors: messages})
			return
		}
		middleware.HandleError(ctx, err)
		return
	}

	ctx.Redirect(http.StatusSeeOther, "/students")
}

func validationMessages(err error) ([]string, bool) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages, true
	}
	return nil, false
}
