package inmem

import (
	"context"
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// GradeRepository joins students, grades and modules the way the SQL query does
type GradeRepository struct {
	db *DB
}

func NewGradeRepository(db *DB) *GradeRepository {
	return &GradeRepository{db: db}
}

func (repo *GradeRepository) ListGradesJoined(ctx context.Context) ([]*models.StudentGradeRow, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	if repo.db.failure != nil {
		return nil, repo.db.failure
	}

	rows := []*models.StudentGradeRow{}
	for _, s := range repo.db.students {
		matched := false
		for _, g := range repo.db.grades {
			if g.SID != s.SID {
				continue
			}
			matched = true
			grade := g.Grade
			row := &models.StudentGradeRow{StudentName: s.Name, Grade: &grade}
			if m, ok := repo.db.modules[g.MID]; ok {
				name := m.Name
				row.ModuleName = &name
			}
			rows = append(rows, row)
		}
		if !matched {
			rows = append(rows, &models.StudentGradeRow{StudentName: s.Name})
		}
	}

	// NULL grades sort last, as in PostgreSQL ascending order
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.StudentName != b.StudentName {
			return a.StudentName < b.StudentName
		}
		switch {
		case a.Grade == nil:
			return false
		case b.Grade == nil:
			return true
		default:
			return *a.Grade < *b.Grade
		}
	})
	return rows, nil
}

func (repo *GradeRepository) InsertGrade(ctx context.Context, grade *models.Grade) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	if repo.db.failure != nil {
		return repo.db.failure
	}

	for _, g := range repo.db.grades {
		if g.SID == grade.SID && g.MID == grade.MID {
			return nil
		}
	}
	repo.db.grades = append(repo.db.grades, *grade)
	return nil
}
