package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
)

func TestGradeRepository_ListGradesJoined(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT student.name AS student_name, module.name AS module_name, grade.grade AS grade " +
			"FROM student LEFT JOIN grade ON student.sid = grade.sid LEFT JOIN module ON grade.mid = module.mid " +
			"ORDER BY student.name ASC, grade.grade ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"student_name", "module_name", "grade"}).
			AddRow("Alan", pgtype.Text{String: "Mobile Apps", Valid: true}, pgtype.Int4{Int32: 70, Valid: true}).
			AddRow("Bob", pgtype.Text{}, pgtype.Int4{}))

	rows, err := repo.ListGradesJoined(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alan", rows[0].StudentName)
	require.NotNil(t, rows[0].ModuleName)
	assert.Equal(t, "Mobile Apps", *rows[0].ModuleName)
	require.NotNil(t, rows[0].Grade)
	assert.Equal(t, 70, *rows[0].Grade)

	assert.Equal(t, &models.StudentGradeRow{StudentName: "Bob"}, rows[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepository_InsertGrade(t *testing.T) {
	mock := newMockPool(t)
	repo := NewGradeRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO grade (sid,mid,grade) VALUES ($1,$2,$3) ON CONFLICT (sid, mid) DO NOTHING")).
		WithArgs("G001", "M100", 65).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.InsertGrade(context.Background(), &models.Grade{SID: "G001", MID: "M100", Grade: 65}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestModuleRepository_ListModules(t *testing.T) {
	mock := newMockPool(t)
	repo := NewModuleRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT mid, name FROM module ORDER BY mid ASC")).
		WillReturnRows(pgxmock.NewRows([]string{"mid", "name"}).
			AddRow("M100", "Databases").
			AddRow("M200", "Networks"))

	modules, err := repo.ListModules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*models.Module{{MID: "M100", Name: "Databases"}, {MID: "M200", Name: "Networks"}}, modules)
	assert.NoError(t, mock.ExpectationsWereMet())
}
