package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
	"github.com/anapiyani/Checkdaily-backend/internal/repo"
	"github.com/anapiyani/Checkdaily-backend/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
)

// UserService handles accounts: registration, credentials, profile,
// deletion.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, uniqueViolationError(err)
		}
		return dom.User{}, err
	}
	return u, nil
}

// ValidateCredentials checks email and password; returns the user if valid.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (dom.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID returns the user for a resolved session.
func (s *UserService) GetByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// UpdateProfile applies the non-nil fields to the user's profile.
// Username and email stay unique across users.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, email, displayName, bio, pictureURL *string) (dom.User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return dom.User{}, err
	}
	if username != nil {
		u.Username = strings.TrimSpace(*username)
	}
	if email != nil {
		u.Email = strings.TrimSpace(*email)
	}
	if displayName != nil {
		u.DisplayName = displayName
	}
	if bio != nil {
		u.Bio = bio
	}
	if pictureURL != nil {
		u.ProfilePictureURL = pictureURL
	}
	out, err := s.repo.UpdateProfile(ctx, u)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, uniqueViolationError(err)
		}
		return dom.User{}, err
	}
	return out, nil
}

// DeleteAccount removes the user after confirming the password. The user's
// checks and day rows go with it via the storage-layer cascade.
func (s *UserService) DeleteAccount(ctx context.Context, userID int64, password string) error {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return s.repo.Delete(ctx, userID)
}

// uniqueViolationError maps a 23505 to the taken-field error by constraint
// name; unknown constraints default to the email error.
func uniqueViolationError(err error) error {
	if strings.Contains(utils.PGConstraintName(err), "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}
