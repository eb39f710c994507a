package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/collegeadmin/internal/app/models"
)

// Stores holds the insert operations seeding needs. Every insert leaves an
// existing key untouched, so seeding can run on each start.
type Stores struct {
	Modules interface {
		InsertModule(ctx context.Context, module *appModels.Module) error
	}
	Students interface {
		StudentExists(ctx context.Context, sid string) (bool, error)
		InsertStudent(ctx context.Context, student *appModels.Student) error
	}
	Grades interface {
		InsertGrade(ctx context.Context, grade *appModels.Grade) error
	}
	Lecturers interface {
		InsertLecturer(ctx context.Context, lecturer *appModels.Lecturer) error
	}
}

var defaultModules = []*appModels.Module{
	{MID: "M100", Name: "Databases"},
	{MID: "M101", Name: "Mobile Apps"},
	{MID: "M102", Name: "Networks"},
	{MID: "M103", Name: "Web Development"},
}

var defaultStudents = []*appModels.Student{
	{SID: "G001", Name: "Sean Smith", Age: 32},
	{SID: "G002", Name: "Sarah Murphy", Age: 23},
	{SID: "G003", Name: "Alan Walsh", Age: 19},
	{SID: "G004", Name: "Niamh Kelly", Age: 21},
	{SID: "G005", Name: "Cian Byrne", Age: 27},
}

var defaultGrades = []*appModels.Grade{
	{SID: "G001", MID: "M100", Grade: 72},
	{SID: "G001", MID: "M102", Grade: 58},
	{SID: "G002", MID: "M101", Grade: 85},
	{SID: "G002", MID: "M100", Grade: 64},
	{SID: "G003", MID: "M103", Grade: 91},
	{SID: "G004", MID: "M102", Grade: 40},
}

var defaultLecturers = []*appModels.Lecturer{
	{ID: "L001", Name: "Mary Lynch", DID: "M100"},
	{ID: "L002", Name: "John Doyle", DID: "M101"},
	{ID: "L003", Name: "Ann Ryan"},
	{ID: "L004", Name: "Paul Keane", DID: "M103"},
	{ID: "L005", Name: "Orla Daly"},
}

// CreateDefaultData inserts sample modules, students, grades and lecturers.
// Existing rows and documents are kept; errors are collected so one failure
// does not stop the rest.
func CreateDefaultData(ctx context.Context, stores Stores, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (Modules/Students/Grades/Lecturers)...")
	var finalErr error

	for _, m := range defaultModules {
		if err := stores.Modules.InsertModule(ctx, m); err != nil {
			lgr.Error().Err(err).Str("mid", m.MID).Msg("Error creating module")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, s := range defaultStudents {
		exists, err := stores.Students.StudentExists(ctx, s.SID)
		if err != nil {
			lgr.Error().Err(err).Str("sid", s.SID).Msg("Error checking student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := stores.Students.InsertStudent(ctx, s); err != nil {
			lgr.Error().Err(err).Str("sid", s.SID).Msg("Error creating student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, g := range defaultGrades {
		if err := stores.Grades.InsertGrade(ctx, g); err != nil {
			lgr.Error().Err(err).Str("sid", g.SID).Str("mid", g.MID).Msg("Error creating grade")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, l := range defaultLecturers {
		if err := stores.Lecturers.InsertLecturer(ctx, l); err != nil {
			lgr.Error().Err(err).Str("lecturerID", l.ID).Msg("Error creating lecturer")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check/creation complete.")
	}
	return finalErr
}
