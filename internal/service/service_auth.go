package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/crypto"
	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/internal/store"
	"github.com/MKhiriev/go-todo-api/internal/utils"
	"github.com/MKhiriev/go-todo-api/internal/validators"
	"github.com/MKhiriev/go-todo-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the
// opaque token lifecycle using argon2id for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository holds the one-token-per-user rows backing bearer auth.
	tokenRepository store.TokenRepository

	// hasher encodes and verifies argon2id password hashes.
	hasher *crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		hasher:          crypto.NewPasswordHasher(),
		logger:          logger,
	}
}

// RegisterUser creates a new account.
//
// It validates that both Username and Password are present, hashes the
// password with argon2id, and delegates persistence to the
// UserRepository. The returned user carries the encoded hash in its
// Password field; the plaintext is discarded.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [validators.FieldErrors] when a credential field is missing or the
//     username is already taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if fieldErrs := validators.ValidateCredentials(creds); fieldErrs != nil {
		log.Error().Str("username", creds.Username).Msg("invalid registration data provided")
		return models.User{}, fieldErrs
	}

	hash, err := a.hasher.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username: creds.Username,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.User{}, validators.MsgUsernameTaken()
		}
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing account and hands back its bearer
// token.
//
// The account's token is created on first login and reused afterwards:
// a fresh candidate key is generated on every call, but the storage
// layer keeps the first one that ever landed for the user.
//
// Returns the token or:
//   - [validators.FieldErrors] with a non_field_errors entry when the
//     username is unknown or the password does not match. Both cases
//     produce the same error so a caller cannot probe for usernames.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("invalid login data provided")
		return models.Token{}, validators.MsgBadCredentials()
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Token{}, validators.MsgBadCredentials()
		}
		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	matches, err := a.hasher.VerifyPassword(creds.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unreadable")
		return models.Token{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !matches {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.Token{}, validators.MsgBadCredentials()
	}

	candidateKey, err := utils.GenerateTokenKey()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, foundUser.UserID, candidateKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token retrieval ended with error")
		return models.Token{}, fmt.Errorf("token retrieval ended with error: %w", err)
	}

	return token, nil
}

// ResolveToken maps an opaque token key to its owning account.
//
// Any unknown key is normalised to [ErrInvalidToken] so that callers do
// not need to inspect storage-level errors.
func (a *authService) ResolveToken(ctx context.Context, key string) (models.User, error) {
	if key == "" {
		return models.User{}, ErrInvalidToken
	}

	user, err := a.tokenRepository.FindUserByTokenKey(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, fmt.Errorf("token lookup ended with error: %w", err)
	}

	return user, nil
}

// ListUsers returns every registered account, stored hash included.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}
