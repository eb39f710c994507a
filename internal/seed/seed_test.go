package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appModels "github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories/inmem"
)

func inmemStores(db *inmem.DB) Stores {
	return Stores{
		Modules:   inmem.NewModuleRepository(db),
		Students:  inmem.NewStudentRepository(db),
		Grades:    inmem.NewGradeRepository(db),
		Lecturers: inmem.NewLecturerRepository(db),
	}
}

func TestCreateDefaultData_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := inmem.Open()
	stores := inmemStores(db)

	// A student edited before a restart keeps its values
	edited := &appModels.Student{SID: "G001", Name: "Sean Smyth", Age: 33}
	require.NoError(t, stores.Students.InsertStudent(ctx, edited))

	require.NoError(t, CreateDefaultData(ctx, stores, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, stores, zerolog.Nop()))

	students, err := inmem.NewStudentRepository(db).ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, len(defaultStudents))
	assert.Equal(t, edited, students[0])

	lecturers, err := inmem.NewLecturerRepository(db).ListLecturers(ctx)
	require.NoError(t, err)
	assert.Len(t, lecturers, len(defaultLecturers))

	rows, err := inmem.NewGradeRepository(db).ListGradesJoined(ctx)
	require.NoError(t, err)
	// G005 has no grades and contributes one empty row
	assert.Len(t, rows, len(defaultGrades)+1)
}

func TestCreateDefaultData_CollectsErrors(t *testing.T) {
	db := inmem.Open()
	storeErr := errors.New("connection refused")
	db.Fail(storeErr)

	err := CreateDefaultData(context.Background(), inmemStores(db), zerolog.Nop())
	assert.ErrorIs(t, err, storeErr)
}
