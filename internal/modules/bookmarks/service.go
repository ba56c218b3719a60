package bookmarks

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Service struct {
	notes     NoteReaderInterface
	bookmarks BookmarkRepositoryInterface
}

func NewService(notes NoteReaderInterface, bookmarks BookmarkRepositoryInterface) *Service {
	return &Service{notes: notes, bookmarks: bookmarks}
}

// Toggle is the only mutation path for bookmarks: it adds one for the note
// if the user has none, otherwise removes it. Racing toggles resolve through
// the store's uniqueness constraint, never as an error.
func (s *Service) Toggle(ctx context.Context, userID, noteID int64) (added bool, err error) {
	if _, err := s.notes.GetByID(ctx, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNoteNotFound
		}
		return false, err
	}

	return s.bookmarks.Toggle(ctx, userID, noteID)
}
