package inmem

import (
	"context"
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
)

type ModuleRepository struct {
	db *DB
}

func NewModuleRepository(db *DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func (repo *ModuleRepository) ListModules(ctx context.Context) ([]*models.Module, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	modules := make([]*models.Module, 0, len(repo.db.modules))
	for _, m := range repo.db.modules {
		m := m
		modules = append(modules, &m)
	}
	sort.Slice(modules, func(i, j int) bool { return modules[i].MID < modules[j].MID })
	return modules, nil
}

func (repo *ModuleRepository) InsertModule(ctx context.Context, module *models.Module) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	if _, ok := repo.db.modules[module.MID]; !ok {
		repo.db.modules[module.MID] = *module
	}
	return nil
}
