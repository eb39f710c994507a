package services

import (
	"context"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// Services defined in this package:
// - StudentService: lists, adds and edits students
// - GradeService: groups joined grade rows per student
// - LecturerService: lists lecturers and deletes unassigned ones

// StudentStore is implemented by repositories.StudentRepository and inmem.StudentRepository
type StudentStore interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, sid string) (*models.Student, error)
	StudentExists(ctx context.Context, sid string) (bool, error)
	InsertStudent(ctx context.Context, student *models.Student) error
	UpdateStudent(ctx context.Context, student *models.Student) error
}

// GradeStore is implemented by repositories.GradeRepository and inmem.GradeRepository
type GradeStore interface {
	ListGradesJoined(ctx context.Context) ([]*models.StudentGradeRow, error)
}

// ModuleStore is implemented by repositories.ModuleRepository and inmem.ModuleRepository
type ModuleStore interface {
	ListModules(ctx context.Context) ([]*models.Module, error)
}

// LecturerStore is implemented by repositories.LecturerRepository and inmem.LecturerRepository
type LecturerStore interface {
	ListLecturers(ctx context.Context) ([]*models.Lecturer, error)
	GetLecturer(ctx context.Context, id string) (*models.Lecturer, error)
	DeleteLecturer(ctx context.Context, id string) error
}

// Services bundles every service the controllers need
type Services struct {
	Student  *StudentService
	Grade    *GradeService
	Lecturer *LecturerService
}

// NewServices wires the services over the given stores
func NewServices(students StudentStore, grades GradeStore, modules ModuleStore, lecturers LecturerStore) *Services {
	return &Services{
		Student:  NewStudentService(students),
		Grade:    NewGradeService(grades, modules),
		Lecturer: NewLecturerService(lecturers),
	}
}
