package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studsafe/internal/domain"
)

// Service contains all business logic for accounts and sessions.
type Service struct {
	users    UserRepositoryInterface
	sessions SessionRepositoryInterface
	pepper   string
	ttl      time.Duration
}

func NewService(
	users UserRepositoryInterface,
	sessions SessionRepositoryInterface,
	pepper string,
	ttl time.Duration,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		pepper:   pepper,
		ttl:      ttl,
	}
}

// Register creates a new account. The username pre-check keeps the common
// duplicate case a clean ErrUsernameTaken; the unique index backstops races.
func (s *Service) Register(ctx context.Context, form SignupForm) (*domain.User, error) {
	username := strings.TrimSpace(form.Username)

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := s.hashPassword(form.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(form.FirstName),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate verifies credentials. Unknown username and wrong password
// both come back as ErrInvalidCredentials so the login page never reveals
// which one was wrong.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// StartSession mints an opaque token, stores its peppered hash and returns
// the raw token for the cookie.
func (s *Service) StartSession(ctx context.Context, userID int64, userAgent, ip string) (string, error) {
	raw, hash, err := generateOpaqueToken(s.pepper)
	if err != nil {
		return "", err
	}

	session := &domain.Session{
		UserID:    userID,
		TokenHash: hash,
		UserAgent: nullableString(userAgent),
		IP:        nullableString(ip),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", err
	}

	return raw, nil
}

// EndSession destroys the session behind the raw token. A token that no
// longer resolves is already logged out, not an error.
func (s *Service) EndSession(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return nil
	}
	return s.sessions.DeleteByTokenHash(ctx, hashTokenWithPepper(rawToken, s.pepper))
}

// UserFromToken resolves the session cookie to its user. Expired or unknown
// tokens yield ErrSessionNotFound and the request proceeds anonymous.
func (s *Service) UserFromToken(ctx context.Context, rawToken string) (*domain.User, error) {
	session, err := s.sessions.GetByTokenHash(ctx, hashTokenWithPepper(rawToken, s.pepper))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !session.ExpiresAt.After(time.Now()) {
		return nil, ErrSessionNotFound
	}

	if session.User != nil {
		return session.User, nil
	}
	return s.users.GetByID(ctx, session.UserID)
}

// SessionTTL exposes the configured lifetime for the cookie Max-Age.
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func generateOpaqueToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}

func nullableString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
