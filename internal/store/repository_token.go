package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/models"
)

// tokenRepository is the SQL-backed implementation of [TokenRepository].
// It handles the one-token-per-user rows in the "auth_tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the
// provided database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken returns the user's token, inserting candidateKey when
// the user has none yet. The whole get-or-create happens in one
// conflict-tolerant statement, so two concurrent logins receive the
// same key and the loser's candidate is discarded.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.Token, error) {
	log := logger.FromContext(ctx)

	var token models.Token
	row := r.db.QueryRowContext(ctx, getOrCreateToken, candidateKey, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error: row is nil")
		return models.Token{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan surviving token row
	if err := row.Scan(&token.Key, &token.UserID, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error: scanning error")
		return models.Token{}, err
	}

	return token, nil
}

// FindUserByTokenKey resolves an opaque token key to its owning account
// by joining auth_tokens against users.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTokenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) FindUserByTokenKey(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByTokenKey, key)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenKey").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&user.UserID, &user.Username, &user.Password, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenKey").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}
