package dto

// GradePlaceholder fills the module and grade cells of a student with no grades
const GradePlaceholder = " "

// ModuleGrade is one module result in the grades view
type ModuleGrade struct {
	ModuleName string `json:"moduleName"`
	Grade      string `json:"grade"`
}

// StudentGrades groups a student's results; a slice of these keeps the
// first-occurrence order of student names from the query.
type StudentGrades struct {
	StudentName string        `json:"studentName"`
	Grades      []ModuleGrade `json:"grades"`
}
