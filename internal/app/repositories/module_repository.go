package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// ModuleRepository handles module database operations
type ModuleRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(db DBTX) *ModuleRepository {
	return &ModuleRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// ListModules retrieves all modules ordered by mid
func (r *ModuleRepository) ListModules(ctx context.Context) ([]*models.Module, error) {
	sql, args, err := r.sb.Select("mid", "name").
		From("module").
		OrderBy("mid ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list modules SQL")
		return nil, fmt.Errorf("failed to build list modules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list modules query")
		return nil, fmt.Errorf("error querying modules: %w", err)
	}
	defer rows.Close()

	modules := []*models.Module{}
	for rows.Next() {
		module := &models.Module{}
		if err := rows.Scan(&module.MID, &module.Name); err != nil {
			logger.Error().Err(err).Msg("Error scanning module row")
			return nil, fmt.Errorf("error scanning module row: %w", err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating module rows")
		return nil, fmt.Errorf("error iterating module rows: %w", err)
	}

	return modules, nil
}

// InsertModule creates a module, leaving an existing mid untouched
func (r *ModuleRepository) InsertModule(ctx context.Context, module *models.Module) error {
	sql, args, err := r.sb.Insert("module").
		Columns("mid", "name").
		Values(module.MID, module.Name).
		Suffix("ON CONFLICT (mid) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert module SQL")
		return fmt.Errorf("failed to build insert module query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("mid", module.MID).Msg("Error executing insert module query")
		return fmt.Errorf("error inserting module: %w", err)
	}
	return nil
}
