package services

import (
	"context"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// LecturerService handles lecturer-related operations
type LecturerService struct {
	lecturerRepo LecturerStore
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(lecturerRepo LecturerStore) *LecturerService {
	return &LecturerService{lecturerRepo: lecturerRepo}
}

// ListLecturers returns all lecturers ordered by id
func (s *LecturerService) ListLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	return s.lecturerRepo.ListLecturers(ctx)
}

// DeleteLecturer removes an unassigned lecturer.
// It returns the lecturer together with apperrors.ErrLecturerAssigned when the
// lecturer still has a module association, leaving the document in place.
func (s *LecturerService) DeleteLecturer(ctx context.Context, id string) (*models.Lecturer, error) {
	lecturer, err := s.lecturerRepo.GetLecturer(ctx, id)
	if err != nil {
		return nil, err
	}

	if lecturer.IsAssigned() {
		logger.Warn().Str("lecturerID", id).Str("did", lecturer.DID).Msg("Refused to delete assigned lecturer")
		return lecturer, apperrors.ErrLecturerAssigned
	}

	if err := s.lecturerRepo.DeleteLecturer(ctx, id); err != nil {
		return nil, err
	}
	return lecturer, nil
}
