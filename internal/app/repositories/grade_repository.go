package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db DBTX) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// ListGradesJoined returns every student left joined to their grades and
// modules, ordered by student name then grade.
func (r *GradeRepository) ListGradesJoined(ctx context.Context) ([]*models.StudentGradeRow, error) {
	sql, args, err := r.sb.Select(
		"student.name AS student_name",
		"module.name AS module_name",
		"grade.grade AS grade",
	).
		From("student").
		LeftJoin("grade ON student.sid = grade.sid").
		LeftJoin("module ON grade.mid = module.mid").
		OrderBy("student.name ASC", "grade.grade ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building joined grades SQL")
		return nil, fmt.Errorf("failed to build joined grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing joined grades query")
		return nil, fmt.Errorf("error querying grades: %w", err)
	}
	defer rows.Close()

	result := []*models.StudentGradeRow{}
	for rows.Next() {
		var (
			row        models.StudentGradeRow
			moduleName pgtype.Text
			grade      pgtype.Int4
		)
		if err := rows.Scan(&row.StudentName, &moduleName, &grade); err != nil {
			logger.Error().Err(err).Msg("Error scanning joined grade row")
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		if moduleName.Valid {
			name := moduleName.String
			row.ModuleName = &name
		}
		if grade.Valid {
			value := int(grade.Int32)
			row.Grade = &value
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating grade rows")
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return result, nil
}

// InsertGrade records a grade, leaving an existing (sid, mid) pair untouched
func (r *GradeRepository) InsertGrade(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grade").
		Columns("sid", "mid", "grade").
		Values(grade.SID, grade.MID, grade.Grade).
		Suffix("ON CONFLICT (sid, mid) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert grade SQL")
		return fmt.Errorf("failed to build insert grade query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("sid", grade.SID).Str("mid", grade.MID).Msg("Error executing insert grade query")
		return fmt.Errorf("error inserting grade: %w", err)
	}
	return nil
}
