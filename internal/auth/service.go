package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/stride-commerce/stride/internal/platform/httpx"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	tokens *TokenService
}

// NewService constructs a new Service.
func NewService(repo Repository, tokens *TokenService) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// HashPassword produces an irreversible bcrypt hash. Empty passwords are
// rejected upstream; this guards against direct misuse.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password: %w", httpx.ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SignupInput carries the fields required to create an account.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Signup creates the account and logs the new user in by issuing a token.
func (s *Service) Signup(ctx context.Context, in SignupInput) (string, error) {
	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", err
	}
	user, err := s.repo.CreateUser(ctx, User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user.ID, user.Email)
}

// Login validates credentials and issues a token. Unknown emails and wrong
// passwords fail identically so callers learn nothing about which occurred.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("auth: login lookup: %w", err)
	}
	if !CheckPassword(password, user.PasswordHash) {
		return "", nil, fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
	}
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
