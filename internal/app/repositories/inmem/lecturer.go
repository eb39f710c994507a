package inmem

import (
	"context"
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

type LecturerRepository struct {
	db *DB
}

func NewLecturerRepository(db *DB) *LecturerRepository {
	return &LecturerRepository{db: db}
}

func (repo *LecturerRepository) ListLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	lecturers := make([]*models.Lecturer, 0, len(repo.db.lecturers))
	for _, l := range repo.db.lecturers {
		l := l
		lecturers = append(lecturers, &l)
	}
	sort.Slice(lecturers, func(i, j int) bool { return lecturers[i].ID < lecturers[j].ID })
	return lecturers, nil
}

func (repo *LecturerRepository) GetLecturer(ctx context.Context, id string) (*models.Lecturer, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	if l, ok := repo.db.lecturers[id]; ok {
		return &l, nil
	}
	return nil, apperrors.ErrLecturerNotFound
}

func (repo *LecturerRepository) DeleteLecturer(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	if _, ok := repo.db.lecturers[id]; !ok {
		return apperrors.ErrLecturerNotFound
	}
	delete(repo.db.lecturers, id)
	return nil
}

func (repo *LecturerRepository) InsertLecturer(ctx context.Context, lecturer *models.Lecturer) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	if _, ok := repo.db.lecturers[lecturer.ID]; !ok {
		repo.db.lecturers[lecturer.ID] = *lecturer
	}
	return nil
}
