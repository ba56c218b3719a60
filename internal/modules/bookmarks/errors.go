package bookmarks

import "errors"

var ErrNoteNotFound = errors.New("note not found")
