package dto

import "github.com/yigit/collegeadmin/internal/app/models"

// StudentListView is the template data for the students page
type StudentListView struct {
	Students []*models.Student
}

// GradesView is the template data for the grades page
type GradesView struct {
	StudentGrades []*StudentGrades
	Modules       []*models.Module
}

// LecturerListView is the template data for the lecturers page
type LecturerListView struct {
	Lecturers []*models.Lecturer
}

// DeleteLecturerView is shown when a lecturer cannot be deleted
type DeleteLecturerView struct {
	LID string
}
