package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories/inmem"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

func newLecturerService(t *testing.T) *services.LecturerService {
	t.Helper()
	repo := inmem.NewLecturerRepository(inmem.Open())
	for _, l := range []*models.Lecturer{
		{ID: "L003", Name: "Ann Ryan"},
		{ID: "L001", Name: "Mary Lynch", DID: "CS"},
		{ID: "L002", Name: "John Doyle"},
	} {
		require.NoError(t, repo.InsertLecturer(context.Background(), l))
	}
	return services.NewLecturerService(repo)
}

func lecturerIDs(t *testing.T, svc *services.LecturerService) []string {
	t.Helper()
	lecturers, err := svc.ListLecturers(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(lecturers))
	for _, l := range lecturers {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestLecturerService_ListLecturers(t *testing.T) {
	svc := newLecturerService(t)
	assert.Equal(t, []string{"L001", "L002", "L003"}, lecturerIDs(t, svc))
}

func TestLecturerService_DeleteLecturer(t *testing.T) {
	ctx := context.Background()

	t.Run("assigned lecturer is kept", func(t *testing.T) {
		svc := newLecturerService(t)

		lecturer, err := svc.DeleteLecturer(ctx, "L001")
		assert.ErrorIs(t, err, apperrors.ErrLecturerAssigned)
		require.NotNil(t, lecturer)
		assert.Equal(t, "CS", lecturer.DID)
		assert.Equal(t, []string{"L001", "L002", "L003"}, lecturerIDs(t, svc))
	})

	t.Run("unassigned lecturer is removed", func(t *testing.T) {
		svc := newLecturerService(t)

		_, err := svc.DeleteLecturer(ctx, "L002")
		require.NoError(t, err)
		assert.Equal(t, []string{"L001", "L003"}, lecturerIDs(t, svc))
	})

	t.Run("absent lecturer", func(t *testing.T) {
		svc := newLecturerService(t)

		_, err := svc.DeleteLecturer(ctx, "L404")
		assert.ErrorIs(t, err, apperrors.ErrLecturerNotFound)
	})
}
