package models

// Grade links a student to a module with the mark awarded
type Grade struct {
	SID   string `json:"sid" db:"sid"`
	MID   string `json:"mid" db:"mid"`
	Grade int    `json:"grade" db:"grade"`
}

// StudentGradeRow is one row of the student → grade → module left join.
// ModuleName and Grade are nil for students with no grade recorded.
type StudentGradeRow struct {
	StudentName string
	ModuleName  *string
	Grade       *int
}
