package models

// Module defines a taught module based on the 'module' table
type Module struct {
	MID  string `json:"mid" db:"mid"`
	Name string `json:"name" db:"name"`
}
