package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBTX is the part of *pgxpool.Pool the relational repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	GradeRepository    *GradeRepository
	ModuleRepository   *ModuleRepository
	LecturerRepository *LecturerRepository
}

// NewRepositories initializes all repositories over the shared pool and
// lecturer collection.
func NewRepositories(db DBTX, lecturers *mongo.Collection) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(db),
		GradeRepository:    NewGradeRepository(db),
		ModuleRepository:   NewModuleRepository(db),
		LecturerRepository: NewLecturerRepository(lecturers),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
