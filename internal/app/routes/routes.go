package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/controllers"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// Controllers groups the handlers registered by SetupRouter
type Controllers struct {
	Home     *controllers.HomeController
	Student  *controllers.StudentController
	Grade    *controllers.GradeController
	Lecturer *controllers.LecturerController
	Health   *controllers.HealthController
}

// NewRouter creates the gin engine with the views and middleware installed
func NewRouter(views *template.Template) *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context to the stores; fall back to the request context for cancellation
	router.ContextWithFallback = true
	router.SetHTMLTemplate(views)
	router.Use(middleware.RequestID(), middleware.AccessLog(), middleware.Recovery())
	router.NoRoute(middleware.NotFound())
	return router
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/", c.Home.Index)
	router.GET("/health", c.Health.Health)

	students := router.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.GET("/edit/:sid", c.Student.ShowEditForm)
		students.POST("/edit/:sid", c.Student.UpdateStudent)
		students.GET("/add", c.Student.ShowAddForm)
		students.POST("/add", c.Student.AddStudent)
	}

	router.GET("/grades", c.Grade.ListGrades)

	lecturers := router.Group("/lecturers")
	{
		lecturers.GET("", c.Lecturer.ListLecturers)
		lecturers.GET("/delete/:lid", c.Lecturer.DeleteLecturer)
	}
}
