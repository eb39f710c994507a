package inmem

import (
	"context"
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

// StudentRepository is the in-memory counterpart of repositories.StudentRepository
type StudentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (repo *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	students := make([]*models.Student, 0, len(repo.db.students))
	for _, s := range repo.db.students {
		s := s
		students = append(students, &s)
	}
	sort.Slice(students, func(i, j int) bool { return students[i].SID < students[j].SID })
	return students, nil
}

func (repo *StudentRepository) GetStudent(ctx context.Context, sid string) (*models.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	if s, ok := repo.db.students[sid]; ok {
		return &s, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (repo *StudentRepository) StudentExists(ctx context.Context, sid string) (bool, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return false, repo.db.failure
	}

	_, ok := repo.db.students[sid]
	return ok, nil
}

func (repo *StudentRepository) InsertStudent(ctx context.Context, student *models.Student) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	if _, ok := repo.db.students[student.SID]; ok {
		return apperrors.ErrStudentAlreadyExists
	}
	repo.db.students[student.SID] = *student
	return nil
}

func (repo *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	if _, ok := repo.db.students[student.SID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	repo.db.students[student.SID] = *student
	return nil
}
