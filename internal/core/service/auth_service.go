package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/KarolinaSkr/NotesManagement/internal/core/domain"
	"github.com/KarolinaSkr/NotesManagement/internal/core/ports"
)

// AuthService implements registration, login and logout. The account kind is
// resolved here, once, from the configured demo email; everything downstream
// receives it as a typed value.
type AuthService struct {
	repo      ports.UserRepository
	lifecycle ports.LifecycleManager
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	demoEmail string
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, lifecycle ports.LifecycleManager, revoker ports.TokenRevoker, jwtSecret, demoEmail string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		lifecycle: lifecycle,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		demoEmail: demoEmail,
		logger:    logger,
	}
}

// Register creates a new account and seeds its one-time starter dataset.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Kind:         s.kindFor(email),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	created.Kind = user.Kind

	if err := s.lifecycle.SeedOnRegister(ctx, created); err != nil {
		s.logger.Error().Err(err).Str("user_id", created.ID).Msg("failed to seed new account")
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("account registered")
	return created, nil
}

// Login verifies the credentials and issues a signed token. The demo account
// additionally has its session dataset materialized before the token is
// handed out.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	user.Kind = s.kindFor(user.Email)

	if err := s.lifecycle.SeedOnLogin(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("account_kind", string(user.Kind)).Msg("login successful")
	return token, user, nil
}

// Logout revokes the presented token for its remaining lifetime and, for the
// demo account, purges the session dataset so the next login starts clean.
func (s *AuthService) Logout(ctx context.Context, token string, user *domain.User) error {
	if err := s.lifecycle.PurgeOnLogout(ctx, user); err != nil {
		return err
	}

	ttl := s.remainingTTL(token)
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, token, ttl); err != nil {
		s.logger.Error().Err(err).Msg("failed to revoke token")
		return err
	}
	return nil
}

func (s *AuthService) kindFor(email string) domain.AccountKind {
	if email == s.demoEmail {
		return domain.KindDemo
	}
	return domain.KindOrdinary
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":          user.ID,
		"email":        user.Email,
		"account_kind": string(user.Kind),
		"exp":          time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// remainingTTL parses the token's exp claim to bound how long the revocation
// entry has to live. An unparsable or already expired token needs no entry.
func (s *AuthService) remainingTTL(token string) time.Duration {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return 0
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return 0
	}
	return time.Until(exp.Time)
}
