package dto

import "github.com/yigit/collegeadmin/internal/app/models"

// AddStudentRequest is the body of POST /students/add
type AddStudentRequest struct {
	SID  string `form:"sid" json:"sid" validate:"required,len=4"`
	Name string `form:"name" json:"name" validate:"required,min=2"`
	Age  int    `form:"age" json:"age" validate:"required,min=18"`
}

// ToModel returns the student described by the request
func (r AddStudentRequest) ToModel() *models.Student {
	return &models.Student{SID: r.SID, Name: r.Name, Age: r.Age}
}

// UpdateStudentRequest is the body of POST /students/edit/:sid.
// The sid comes from the path and cannot be changed.
type UpdateStudentRequest struct {
	Name string `form:"name" json:"name" validate:"required,min=2"`
	Age  int    `form:"age" json:"age" validate:"required,min=18"`
}

// ToModel returns the student with the given sid and the requested values
func (r UpdateStudentRequest) ToModel(sid string) *models.Student {
	return &models.Student{SID: sid, Name: r.Name, Age: r.Age}
}

// StudentFormView is the template data for the add and edit student forms
type StudentFormView struct {
	Student *models.Student
	Errors  []string
}
