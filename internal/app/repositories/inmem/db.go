// Package inmem keeps students, grades, modules and lecturers in memory.
// It mirrors the PostgreSQL and MongoDB repositories for tests and local runs.
package inmem

import (
	"sync"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// DB is the shared in-memory backing store
type DB struct {
	mutex     sync.RWMutex
	students  map[string]models.Student
	modules   map[string]models.Module
	grades    []models.Grade
	lecturers map[string]models.Lecturer
	failure   error
}

// Open returns an empty store
func Open() *DB {
	return &DB{
		students:  make(map[string]models.Student),
		modules:   make(map[string]models.Module),
		lecturers: make(map[string]models.Lecturer),
	}
}

// Fail makes every subsequent operation return err; nil restores normal behaviour
func (db *DB) Fail(err error) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.failure = err
}
