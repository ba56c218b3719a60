package bookmarks

import (
	"context"

	"studsafe/internal/domain"
)

type NoteReaderInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.Note, error)
}

type BookmarkRepositoryInterface interface {
	Toggle(ctx context.Context, userID, noteID int64) (added bool, err error)
}
