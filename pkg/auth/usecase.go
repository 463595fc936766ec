package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/skilllens/pkg/readiness"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, email, password, fullName string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Logout(ctx context.Context, s Session) error
	Profile(ctx context.Context, userID uuid.UUID) (Profile, error)
}

type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type authService struct {
	repo    UserRepository
	tokens  TokenGenerator
	revoker TokenRevoker
	scores  readiness.Repository
	now     func() time.Time
}

// NewAuthService returns default implementation of AuthUseCase. revoker may
// be nil, then logout only acknowledges.
func NewAuthService(repo UserRepository, tokens TokenGenerator, revoker TokenRevoker, scores readiness.Repository) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, revoker: revoker, scores: scores, now: func() time.Time { return time.Now().UTC() }}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	// Fail fast; the unique index still guards concurrent signups.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return AuthResult{}, ErrPasswordTooLong
	}
	if err != nil {
		return AuthResult{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		PasswordHash: string(passwordHash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Logout(ctx context.Context, sess Session) error {
	if s.revoker == nil || sess.TokenID == "" {
		return nil
	}
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, sess.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	user, err := s.repo.GetByID(ctx, userID.String())
	if err != nil {
		return Profile{}, err
	}
	p := Profile{ID: user.ID, Email: user.Email, FullName: user.FullName, CreatedAt: user.CreatedAt}
	sc, err := s.scores.Get(ctx, userID)
	switch {
	case errors.Is(err, readiness.ErrNoScore):
	case err != nil:
		return Profile{}, fmt.Errorf("load score: %w", err)
	default:
		p.Score = &sc.Score
		p.SkillsCount = &sc.SkillsCount
	}
	return p, nil
}
