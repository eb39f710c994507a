package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/dberrors"
	"github.com/yigit/collegeadmin/internal/pkg/logger"
)

// LecturerRepository handles lecturer documents
type LecturerRepository struct {
	coll *mongo.Collection
}

// NewLecturerRepository creates a new LecturerRepository over the lecturers collection
func NewLecturerRepository(coll *mongo.Collection) *LecturerRepository {
	return &LecturerRepository{coll: coll}
}

// ListLecturers retrieves all lecturers sorted by _id ascending
func (r *LecturerRepository) ListLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying lecturers")
		return nil, fmt.Errorf("error querying lecturers: %w", err)
	}
	defer cursor.Close(ctx)

	lecturers := []*models.Lecturer{}
	if err := cursor.All(ctx, &lecturers); err != nil {
		logger.Error().Err(err).Msg("Error decoding lecturer documents")
		return nil, fmt.Errorf("error decoding lecturers: %w", err)
	}

	return lecturers, nil
}

// GetLecturer retrieves one lecturer by _id, or apperrors.ErrLecturerNotFound
func (r *LecturerRepository) GetLecturer(ctx context.Context, id string) (*models.Lecturer, error) {
	lecturer := &models.Lecturer{}
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(lecturer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrLecturerNotFound
		}
		logger.Error().Err(err).Str("lecturerID", id).Msg("Error finding lecturer")
		return nil, fmt.Errorf("error getting lecturer: %w", err)
	}

	return lecturer, nil
}

// DeleteLecturer removes the lecturer document with the given _id.
// Returns apperrors.ErrLecturerNotFound when nothing was deleted.
func (r *LecturerRepository) DeleteLecturer(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.Error().Err(err).Str("lecturerID", id).Msg("Error deleting lecturer")
		return fmt.Errorf("error deleting lecturer: %w", err)
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrLecturerNotFound
	}

	logger.Info().Str("lecturerID", id).Msg("Lecturer deleted")
	return nil
}

// InsertLecturer stores a lecturer; an existing _id is left untouched
func (r *LecturerRepository) InsertLecturer(ctx context.Context, lecturer *models.Lecturer) error {
	if _, err := r.coll.InsertOne(ctx, lecturer); err != nil {
		if dberrors.IsDuplicateDocumentError(err) {
			return nil
		}
		logger.Error().Err(err).Str("lecturerID", lecturer.ID).Msg("Error inserting lecturer")
		return fmt.Errorf("error inserting lecturer: %w", err)
	}
	return nil
}
