package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/dberrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

const studentPrimaryKey = "student_pkey"

// StudentRepository handles student database operations
type StudentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// ListStudents retrieves all students ordered by sid
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("sid", "name", "age").
		From("student").
		OrderBy("sid ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list students SQL")
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(&student.SID, &student.Name, &student.Age); err != nil {
			logger.Error().Err(err).Msg("Error scanning student row")
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// GetStudent retrieves one student by sid, or apperrors.ErrStudentNotFound
func (r *StudentRepository) GetStudent(ctx context.Context, sid string) (*models.Student, error) {
	sql, args, err := r.sb.Select("sid", "name", "age").
		From("student").
		Where(squirrel.Eq{"sid": sid}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.SID, &student.Name, &student.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("sid", sid).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// StudentExists reports whether a student with sid is already stored
func (r *StudentRepository) StudentExists(ctx context.Context, sid string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("student").
		Where(squirrel.Eq{"sid": sid}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student exists SQL")
		return false, fmt.Errorf("failed to build student existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("sid", sid).Msg("Error checking student existence")
		return false, fmt.Errorf("error checking student existence: %w", err)
	}

	return exists, nil
}

// InsertStudent creates a new student row
func (r *StudentRepository) InsertStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("student").
		Columns("sid", "name", "age").
		Values(student.SID, student.Name, student.Age).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert student SQL")
		return fmt.Errorf("failed to build insert student query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentPrimaryKey) {
			logger.Warn().Str("sid", student.SID).Msg("Attempted to insert student with duplicate sid")
			return apperrors.ErrStudentAlreadyExists
		}
		logger.Error().Err(err).Str("sid", student.SID).Msg("Error executing insert student query")
		return fmt.Errorf("error inserting student: %w", err)
	}

	logger.Info().Str("sid", student.SID).Msg("Student created")
	return nil
}

// UpdateStudent sets name and age of the student with the given sid.
// Returns apperrors.ErrStudentNotFound when no row matches.
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("student").
		Set("name", student.Name).
		Set("age", student.Age).
		Where(squirrel.Eq{"sid": student.SID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("sid", student.SID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
