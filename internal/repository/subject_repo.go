package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"studsafe/internal/domain"
)

type SubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a subject. Subjects are made by the seeder or an operator,
// never by end users.
func (r *SubjectRepository) Create(ctx context.Context, s *domain.Subject) error {
	s.Name = strings.TrimSpace(s.Name)
	if s.Icon == "" {
		s.Icon = domain.DefaultSubjectIcon
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*domain.Subject, error) {
	var s domain.Subject
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListWithCounts returns all subjects ordered by name, each annotated with
// the number of notes filed under it.
func (r *SubjectRepository) ListWithCounts(ctx context.Context) ([]domain.SubjectWithCount, error) {
	var subjects []domain.SubjectWithCount
	err := r.db.WithContext(ctx).Model(&domain.Subject{}).
		Select("subjects.*, COUNT(notes.id) AS note_count").
		Joins("LEFT JOIN notes ON notes.subject_id = subjects.id").
		Group("subjects.id").
		Order("subjects.name ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *SubjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Subject{}).Count(&count).Error
	return count, err
}
