package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"studsafe/internal/database"
	"studsafe/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedNotes(t *testing.T, db *gorm.DB) (math, science domain.Subject, user domain.User) {
	t.Helper()
	ctx := context.Background()

	users := NewUserRepository(db)
	subjects := NewSubjectRepository(db)
	notes := NewNoteRepository(db)

	user = domain.User{Username: "aigerim", PasswordHash: "x", FirstName: "Aigerim"}
	require.NoError(t, users.Create(ctx, &user))

	math = domain.Subject{Name: "Math"}
	science = domain.Subject{Name: "Science"}
	require.NoError(t, subjects.Create(ctx, &math))
	require.NoError(t, subjects.Create(ctx, &science))

	for _, n := range []domain.Note{
		{Title: "Algebra Basics", Description: "equations", SubjectID: math.ID, UploadedBy: user.ID, FilePath: "notes/2026/08/30/a.pdf", FileName: "a.pdf"},
		{Title: "Biology 101", Description: "cells", SubjectID: science.ID, UploadedBy: user.ID, FilePath: "notes/2026/08/30/b.pdf", FileName: "b.pdf"},
		{Title: "Geometry", Description: "covers algebraic proofs too", SubjectID: math.ID, UploadedBy: user.ID, FilePath: "notes/2026/08/30/c.pdf", FileName: "c.pdf"},
	} {
		note := n
		require.NoError(t, notes.Create(ctx, &note))
	}
	return math, science, user
}

func TestNoteRepository_ListNewestFirst(t *testing.T) {
	db := setupDB(t)
	seedNotes(t, db)
	repo := NewNoteRepository(db)

	notes, err := repo.List(context.Background(), NoteFilter{})
	require.NoError(t, err)
	require.Len(t, notes, 3)

	for i := 1; i < len(notes); i++ {
		assert.False(t, notes[i].CreatedAt.After(notes[i-1].CreatedAt))
	}
	// Preloads come along for the listing pages
	require.NotNil(t, notes[0].Subject)
	require.NotNil(t, notes[0].Uploader)
}

func TestNoteRepository_QueryMatchesTitleDescriptionAndSubject(t *testing.T) {
	db := setupDB(t)
	seedNotes(t, db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	titles := func(notes []domain.Note) []string {
		out := make([]string, 0, len(notes))
		for _, n := range notes {
			out = append(out, n.Title)
		}
		return out
	}

	// Case-insensitive title and description matches
	notes, err := repo.List(ctx, NoteFilter{Query: "ALGEBRA"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Algebra Basics", "Geometry"}, titles(notes))

	// Subject name matches
	notes, err = repo.List(ctx, NoteFilter{Query: "science"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Biology 101"}, titles(notes))

	// No match
	notes, err = repo.List(ctx, NoteFilter{Query: "chemistry"})
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestNoteRepository_SubjectFilterCombinesWithQuery(t *testing.T) {
	db := setupDB(t)
	math, science, _ := seedNotes(t, db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	notes, err := repo.List(ctx, NoteFilter{SubjectID: &math.ID})
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	// "algebra" matches two notes overall, none of them in science
	notes, err = repo.List(ctx, NoteFilter{SubjectID: &science.ID, Query: "algebra"})
	require.NoError(t, err)
	assert.Empty(t, notes)

	notes, err = repo.List(ctx, NoteFilter{SubjectID: &math.ID, Query: "algebra"})
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteRepository_IncrementDownloads(t *testing.T) {
	db := setupDB(t)
	seedNotes(t, db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	notes, err := repo.List(ctx, NoteFilter{Query: "biology"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	id := notes[0].ID

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementDownloads(ctx, id))
	}

	note, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(3), note.Downloads)

	// Other notes stay untouched
	others, err := repo.List(ctx, NoteFilter{Query: "algebra basics"})
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, int64(0), others[0].Downloads)
}

func TestNoteRepository_IncrementDownloadsMissingNote(t *testing.T) {
	db := setupDB(t)
	repo := NewNoteRepository(db)

	err := repo.IncrementDownloads(context.Background(), 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_RecentAndCount(t *testing.T) {
	db := setupDB(t)
	seedNotes(t, db)
	repo := NewNoteRepository(db)
	ctx := context.Background()

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
