package notes

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrFileRequired    = errors.New("file required")
	ErrFileMissing     = errors.New("stored file missing")
)
