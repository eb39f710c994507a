package models

// Lecturer is stored as a document in the lecturers collection
type Lecturer struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
	// DID is the module or department the lecturer is attached to; empty when unassigned
	DID string `json:"did" bson:"did"`
}

// IsAssigned reports whether the lecturer still has a module association
func (l *Lecturer) IsAssigned() bool {
	return l.DID != ""
}
