package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
	"github.com/yigit/collegeadmin/internal/pkg/validation"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// ListStudents returns all students ordered by sid
func (s *StudentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListStudents(ctx)
}

// GetStudent returns the student or apperrors.ErrStudentNotFound
func (s *StudentService) GetStudent(ctx context.Context, sid string) (*models.Student, error) {
	return s.studentRepo.GetStudent(ctx, sid)
}

// AddStudent validates req and inserts the student.
// A rejected form is reported as *apperrors.ValidationError carrying the messages in display order.
func (s *StudentService) AddStudent(ctx context.Context, req dto.AddStudentRequest) (*models.Student, error) {
	messages := validation.Struct(req)

	if req.SID != "" {
		exists, err := s.studentRepo.StudentExists(ctx, req.SID)
		if err != nil {
			return nil, fmt.Errorf("error checking student id: %w", err)
		}
		if exists {
			messages = append(messages, validation.StudentExistsMessage(req.SID))
		}
	}

	if len(messages) > 0 {
		return nil, apperrors.NewValidationError(messages)
	}

	student := req.ToModel()
	if err := s.studentRepo.InsertStudent(ctx, student); err != nil {
		// Lost a race with a concurrent add of the same sid
		if errors.Is(err, apperrors.ErrStudentAlreadyExists) {
			return nil, apperrors.NewValidationError([]string{validation.StudentExistsMessage(req.SID)})
		}
		return nil, err
	}

	logger.Info().Str("sid", student.SID).Msg("Student added")
	return student, nil
}

// UpdateStudent validates req and updates name and age of the student with the given sid.
// The student must exist; otherwise apperrors.ErrStudentNotFound is returned before validation.
func (s *StudentService) UpdateStudent(ctx context.Context, sid string, req dto.UpdateStudentRequest) (*models.Student, error) {
	if _, err := s.studentRepo.GetStudent(ctx, sid); err != nil {
		return nil, err
	}

	if messages := validation.Struct(req); len(messages) > 0 {
		return nil, apperrors.NewValidationError(messages)
	}

	student := req.ToModel(sid)
	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Str("sid", sid).Msg("Student updated")
	return student, nil
}
