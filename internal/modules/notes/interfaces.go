package notes

import (
	"context"

	"studsafe/internal/domain"
	"studsafe/internal/repository"
)

type NoteRepositoryInterface interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
	List(ctx context.Context, filter repository.NoteFilter) ([]domain.Note, error)
	ListByUploader(ctx context.Context, userID int64) ([]domain.Note, error)
	IncrementDownloads(ctx context.Context, id int64) error
}

type SubjectRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Subject, error)
	ListWithCounts(ctx context.Context) ([]domain.SubjectWithCount, error)
}

type BookmarkReaderInterface interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error)
}
