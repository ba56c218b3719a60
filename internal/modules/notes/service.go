package notes

import (
	"context"
	"errors"
	"io"
	"strings"

	"gorm.io/gorm"

	"studsafe/internal/domain"
	"studsafe/internal/repository"
	"studsafe/internal/storage"
)

type Service struct {
	notes     NoteRepositoryInterface
	subjects  SubjectRepositoryInterface
	bookmarks BookmarkReaderInterface
	store     storage.Store
}

func NewService(
	notes NoteRepositoryInterface,
	subjects SubjectRepositoryInterface,
	bookmarks BookmarkReaderInterface,
	store storage.Store,
) *Service {
	return &Service{
		notes:     notes,
		subjects:  subjects,
		bookmarks: bookmarks,
		store:     store,
	}
}

// Browse lists notes for the browse page along with the subject sidebar.
// Both filters are optional and combine.
func (s *Service) Browse(ctx context.Context, subjectID *int64, query string) ([]domain.Note, []domain.SubjectWithCount, error) {
	notes, err := s.notes.List(ctx, repository.NoteFilter{
		SubjectID: subjectID,
		Query:     query,
	})
	if err != nil {
		return nil, nil, err
	}

	subjects, err := s.subjects.ListWithCounts(ctx)
	if err != nil {
		return nil, nil, err
	}

	return notes, subjects, nil
}

func (s *Service) Subjects(ctx context.Context) ([]domain.SubjectWithCount, error) {
	return s.subjects.ListWithCounts(ctx)
}

// Upload stores the file and persists the note. The uploader always comes
// from the session, never from the form.
func (s *Service) Upload(ctx context.Context, uploader *domain.User, form UploadForm, fileName string, file io.Reader) (*domain.Note, error) {
	if file == nil || strings.TrimSpace(fileName) == "" {
		return nil, ErrFileRequired
	}

	subject, err := s.subjects.GetByID(ctx, form.SubjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	relPath, size, err := s.store.Save(fileName, file)
	if err != nil {
		return nil, err
	}

	note := &domain.Note{
		Title:       strings.TrimSpace(form.Title),
		Description: strings.TrimSpace(form.Description),
		SubjectID:   subject.ID,
		UploadedBy:  uploader.ID,
		FilePath:    relPath,
		FileName:    strings.TrimSpace(fileName),
		FileSize:    size,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		// The note row never existed; don't leave the blob orphaned.
		_ = s.store.Delete(relPath)
		return nil, err
	}

	return note, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

// Download records the download and resolves the file on disk. The counter
// update and the file read are deliberately not one transaction, but the
// counter is never skipped when the note exists.
func (s *Service) Download(ctx context.Context, id int64) (*domain.Note, string, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if err := s.notes.IncrementDownloads(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNoteNotFound
		}
		return nil, "", err
	}
	note.Downloads++

	path, err := s.store.AbsPath(note.FilePath)
	if err != nil {
		return nil, "", ErrFileMissing
	}

	return note, path, nil
}

// Dashboard gathers the user's uploads and bookmarks, both newest first.
func (s *Service) Dashboard(ctx context.Context, userID int64) ([]domain.Note, []domain.Bookmark, error) {
	uploads, err := s.notes.ListByUploader(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	bookmarks, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return uploads, bookmarks, nil
}
