package models

// Student defines the student model based on the 'student' table
type Student struct {
	SID  string `json:"sid" db:"sid"`   // Four-character student identifier, primary key
	Name string `json:"name" db:"name"` // Full name
	Age  int    `json:"age" db:"age"`
}
