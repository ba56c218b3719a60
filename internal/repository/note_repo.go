package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"studsafe/internal/domain"
)

// NoteFilter narrows a note listing. Zero value means "all notes".
type NoteFilter struct {
	SubjectID *int64
	Query     string
}

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, n *domain.Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	var n domain.Note
	tx := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Uploader").
		First(&n, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &n, nil
}

// List returns notes newest first. The query matches title, description or
// subject name, case-insensitively; LOWER+LIKE behaves the same on postgres
// and sqlite.
func (r *NoteRepository) List(ctx context.Context, filter NoteFilter) ([]domain.Note, error) {
	q := r.db.WithContext(ctx).Model(&domain.Note{}).
		Joins("JOIN subjects ON subjects.id = notes.subject_id").
		Preload("Subject").
		Preload("Uploader").
		Order("notes.created_at DESC")

	if filter.SubjectID != nil {
		q = q.Where("notes.subject_id = ?", *filter.SubjectID)
	}

	if query := strings.TrimSpace(filter.Query); query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(notes.title) LIKE ? OR LOWER(notes.description) LIKE ? OR LOWER(subjects.name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var notes []domain.Note
	if err := q.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Recent returns the newest notes up to limit, for the landing page.
func (r *NoteRepository) Recent(ctx context.Context, limit int) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Preload("Uploader").
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) ListByUploader(ctx context.Context, userID int64) ([]domain.Note, error) {
	var notes []domain.Note
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("uploaded_by = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Note{}).Count(&count).Error
	return count, err
}

// IncrementDownloads bumps the counter in a single UPDATE so concurrent
// downloads cannot lose increments. Returns gorm.ErrRecordNotFound when the
// note does not exist.
func (r *NoteRepository) IncrementDownloads(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&domain.Note{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
