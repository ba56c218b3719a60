package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studsafe/internal/domain"
)

type BookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

// Toggle creates the bookmark if absent and deletes it if present, returning
// whether it was added. The insert is a conditional upsert against the
// (user_id, note_id) unique index, so two racing toggles cannot create a
// duplicate row: the loser's insert affects zero rows and falls through to
// the delete branch.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID, noteID int64) (added bool, err error) {
	b := domain.Bookmark{UserID: userID, NoteID: noteID}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "note_id"}},
			DoNothing: true,
		}).
		Create(&b)
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return true, nil
	}

	// Already bookmarked: remove. A racing delete that got there first
	// leaves RowsAffected at zero, which still reads as "removed".
	del := r.db.WithContext(ctx).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Delete(&domain.Bookmark{})
	return false, del.Error
}

// ListByUser returns the user's bookmarks newest first, with the note and
// its subject and uploader preloaded for the dashboard.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	var bookmarks []domain.Bookmark
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Note").
		Preload("Note.Subject").
		Preload("Note.Uploader").
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, noteID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Bookmark{}).
		Where("user_id = ? AND note_id = ?", userID, noteID).
		Count(&count).Error
	return count > 0, err
}

func (r *BookmarkRepository) Count(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Bookmark{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
