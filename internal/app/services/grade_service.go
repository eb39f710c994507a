package services

import (
	"context"
	"strconv"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
)

// GradeService builds the grades view
type GradeService struct {
	gradeRepo  GradeStore
	moduleRepo ModuleStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(gradeRepo GradeStore, moduleRepo ModuleStore) *GradeService {
	return &GradeService{gradeRepo: gradeRepo, moduleRepo: moduleRepo}
}

// ListStudentGrades returns every student's results grouped by student name
func (s *GradeService) ListStudentGrades(ctx context.Context) ([]*dto.StudentGrades, error) {
	rows, err := s.gradeRepo.ListGradesJoined(ctx)
	if err != nil {
		return nil, err
	}
	return GroupGrades(rows), nil
}

// ListModules returns the module reference list
func (s *GradeService) ListModules(ctx context.Context) ([]*models.Module, error) {
	return s.moduleRepo.ListModules(ctx)
}

// GroupGrades groups rows by student name, preserving the order in which
// names first appear. A row without a module yields a placeholder entry.
func GroupGrades(rows []*models.StudentGradeRow) []*dto.StudentGrades {
	groups := []*dto.StudentGrades{}
	index := make(map[string]*dto.StudentGrades)

	for _, row := range rows {
		group, ok := index[row.StudentName]
		if !ok {
			group = &dto.StudentGrades{StudentName: row.StudentName, Grades: []dto.ModuleGrade{}}
			index[row.StudentName] = group
			groups = append(groups, group)
		}

		if row.ModuleName == nil || *row.ModuleName == "" {
			group.Grades = append(group.Grades, dto.ModuleGrade{
				ModuleName: dto.GradePlaceholder,
				Grade:      dto.GradePlaceholder,
			})
			continue
		}

		grade := ""
		if row.Grade != nil {
			grade = strconv.Itoa(*row.Grade)
		}
		group.Grades = append(group.Grades, dto.ModuleGrade{ModuleName: *row.ModuleName, Grade: grade})
	}

	return groups
}
