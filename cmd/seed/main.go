package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"studsafe/internal/database"
	"studsafe/internal/domain"
	"studsafe/internal/storage"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = "studsafe.db"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookmarks")
	db.Exec("DELETE FROM sessions")
	db.Exec("DELETE FROM notes")
	db.Exec("DELETE FROM subjects")
	db.Exec("DELETE FROM users")

	store := storage.NewFileSystemStore(uploadDir)

	// ================== USERS ==================
	log.Println("Creating users...")
	users := make([]domain.User, 0, 3)
	for i, name := range []string{"Aigerim", "Daniyar", "Madina"} {
		hash, _ := bcrypt.GenerateFromPassword([]byte("student123"), bcrypt.DefaultCost)
		u := domain.User{
			Username:     strings.ToLower(name),
			PasswordHash: string(hash),
			FirstName:    name,
		}
		db.Create(&u)
		users = append(users, u)
		log.Printf("User %d created: %s / student123", i+1, u.Username)
	}

	// ================== SUBJECTS ==================
	log.Println("Creating subjects...")
	subjectSeeds := []domain.Subject{
		{Name: "Mathematics", Icon: "📐", Description: "Algebra, calculus and geometry"},
		{Name: "Physics", Icon: "🔭", Description: "Mechanics, optics and thermodynamics"},
		{Name: "Biology", Icon: "🧬", Description: "Cells, genetics and ecosystems"},
		{Name: "History", Icon: "🏛️", Description: "World and regional history"},
		{Name: "Literature", Icon: domain.DefaultSubjectIcon, Description: ""},
	}
	for i := range subjectSeeds {
		db.Create(&subjectSeeds[i])
	}

	// ================== NOTES ==================
	log.Println("Creating notes...")
	noteSeeds := []struct {
		title       string
		description string
		subject     int
		uploader    int
	}{
		{"Algebra Basics", "Linear equations and factoring, with worked examples.", 0, 0},
		{"Limits and Derivatives", "First-semester calculus summary sheet.", 0, 1},
		{"Newtonian Mechanics", "Forces, energy and momentum cheat sheet.", 1, 1},
		{"Cell Structure", "Organelles and their functions, with diagrams.", 2, 2},
		{"Biology 101", "Intro survey notes for the first midterm.", 2, 0},
		{"Silk Road Trade", "Trade routes and cultural exchange overview.", 3, 2},
	}
	for _, seed := range noteSeeds {
		content := fmt.Sprintf("%s\n\n%s\n", seed.title, seed.description)
		fileName := strings.ReplaceAll(strings.ToLower(seed.title), " ", "_") + ".txt"
		relPath, size, err := store.Save(fileName, strings.NewReader(content))
		if err != nil {
			log.Fatal("seed file write failed:", err)
		}

		note := domain.Note{
			Title:       seed.title,
			Description: seed.description,
			SubjectID:   subjectSeeds[seed.subject].ID,
			UploadedBy:  users[seed.uploader].ID,
			FilePath:    relPath,
			FileName:    fileName,
			FileSize:    size,
		}
		db.Create(&note)
	}

	log.Println("Seed completed.")
}
