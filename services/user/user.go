// Package user handles Google sign-in, session tokens and sign-out.
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "hantrip/database/repository/user"
	"hantrip/models"
	"hantrip/utils"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// SessionDuration is how long a session token stays valid.
const SessionDuration = 30 * 24 * time.Hour

var (
	// ErrInvalidIDToken is returned when Google rejects the id token or the
	// audience does not match our client id.
	ErrInvalidIDToken = errors.New("invalid google id token")
	// ErrSessionRevoked is returned for tokens on the sign-out denylist.
	ErrSessionRevoked = errors.New("session has been signed out")
)

const denylistPrefix = "signout:"

// Service verifies Google identities and manages session tokens.
type Service struct {
	users    userRepo.UserRepository
	redis    *redis.Client
	clientID string
	logger   *zap.Logger

	// verifyIDToken is swappable for tests.
	verifyIDToken func(ctx context.Context, idToken string) (*oauth2.Tokeninfo, error)
}

// NewService creates the identity service. clientID is our Google OAuth
// client id, checked against the token audience.
func NewService(users userRepo.UserRepository, redisClient *redis.Client, clientID string, logger *zap.Logger) *Service {
	s := &Service{
		users:    users,
		redis:    redisClient,
		clientID: clientID,
		logger:   logger,
	}
	s.verifyIDToken = s.tokeninfo
	return s
}

func (s *Service) tokeninfo(ctx context.Context, idToken string) (*oauth2.Tokeninfo, error) {
	svc, err := oauth2.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}
	return svc.Tokeninfo().IdToken(idToken).Context(ctx).Do()
}

// SignInWithGoogle verifies the id token, upserts the visitor record and
// returns a session JWT alongside the user.
func (s *Service) SignInWithGoogle(ctx context.Context, idToken string) (*models.User, string, error) {
	info, err := s.verifyIDToken(ctx, idToken)
	if err != nil {
		s.logger.Warn("google tokeninfo rejected id token", zap.Error(err))
		return nil, "", ErrInvalidIDToken
	}
	if s.clientID != "" && info.Audience != s.clientID {
		s.logger.Warn("id token audience mismatch", zap.String("audience", info.Audience))
		return nil, "", ErrInvalidIDToken
	}
	if info.Email == "" {
		return nil, "", ErrInvalidIDToken
	}

	now := time.Now().UTC()
	usr, err := s.users.GetByEmail(info.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if usr == nil {
		usr = &models.User{
			ID:        uuid.NewString(),
			Email:     info.Email,
			Provider:  "google",
			CreatedAt: now,
		}
	}
	if name, picture := profileClaims(idToken); name != "" || picture != "" {
		usr.Name = name
		usr.Image = picture
	}
	usr.UpdatedAt = now
	if err := s.users.Upsert(usr); err != nil {
		return nil, "", fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, SessionDuration)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return usr, token, nil
}

// profileClaims pulls the display name and avatar URL out of the id token's
// payload. Tokeninfo does not surface either, but it already verified the
// token, so the claims can be decoded without re-checking the signature.
func profileClaims(idToken string) (name, picture string) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(idToken, claims); err != nil {
		return "", ""
	}
	name, _ = claims["name"].(string)
	picture, _ = claims["picture"].(string)
	return name, picture
}

// ValidateSession rejects denylisted or invalid tokens and returns the
// session's user id. Every authenticated route goes through here, so a
// signed-out token stops working everywhere at once.
func (s *Service) ValidateSession(ctx context.Context, token string) (string, error) {
	if revoked, err := s.isRevoked(ctx, token); err != nil {
		return "", err
	} else if revoked {
		return "", ErrSessionRevoked
	}

	id, err := utils.ExtractIDFromToken(token)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	return id, nil
}

// CurrentUser resolves a session token to the signed-in user. Revoked or
// invalid tokens yield an error; a valid token for a deleted user yields
// (nil, nil).
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	id, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(id)
}

// SignOut revokes the session by denylisting its hash for the remaining
// session lifetime.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if _, err := utils.ValidateToken(token); err != nil {
		return fmt.Errorf("invalid session token: %w", err)
	}
	key := denylistPrefix + utils.HashToken(token)
	if err := s.redis.Set(ctx, key, "1", SessionDuration).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (s *Service) isRevoked(ctx context.Context, token string) (bool, error) {
	key := denylistPrefix + utils.HashToken(token)
	_, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session denylist: %w", err)
	}
	return true, nil
}
