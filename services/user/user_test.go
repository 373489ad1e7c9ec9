package user

import (
	"context"
	"errors"
	"testing"

	"hantrip/models"
	"hantrip/utils"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/oauth2/v2"
)

type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}}
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) GetByID(id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Upsert(u *models.User) error {
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func testService(repo *memUserRepo, verify func(context.Context, string) (*oauth2.Tokeninfo, error)) *Service {
	s := NewService(repo, nil, "client-123", zap.NewNop())
	s.verifyIDToken = verify
	return s
}

func TestSignInWithGoogle(t *testing.T) {
	t.Run("verifies, upserts and issues a session", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := testService(repo, func(context.Context, string) (*oauth2.Tokeninfo, error) {
			return &oauth2.Tokeninfo{Audience: "client-123", Email: "visitor@example.com"}, nil
		})

		usr, token, err := svc.SignInWithGoogle(context.Background(), "id-token")
		require.NoError(t, err)
		require.NotNil(t, usr)
		assert.Equal(t, "google", usr.Provider)
		assert.NotEmpty(t, usr.ID)

		stored, _ := repo.GetByEmail("visitor@example.com")
		require.NotNil(t, stored)
		assert.Equal(t, usr.ID, stored.ID)

		sub, err := utils.ExtractIDFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, usr.ID, sub)
	})

	t.Run("carries the profile name and picture", func(t *testing.T) {
		idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email":   "visitor@example.com",
			"name":    "Minji Kim",
			"picture": "https://example.com/minji.png",
		}).SignedString([]byte("irrelevant"))
		require.NoError(t, err)

		repo := newMemUserRepo()
		svc := testService(repo, func(context.Context, string) (*oauth2.Tokeninfo, error) {
			return &oauth2.Tokeninfo{Audience: "client-123", Email: "visitor@example.com"}, nil
		})

		usr, _, err := svc.SignInWithGoogle(context.Background(), idToken)
		require.NoError(t, err)
		assert.Equal(t, "Minji Kim", usr.Name)
		assert.Equal(t, "https://example.com/minji.png", usr.Image)

		stored, _ := repo.GetByEmail("visitor@example.com")
		require.NotNil(t, stored)
		assert.Equal(t, "Minji Kim", stored.Name)
		assert.Equal(t, "https://example.com/minji.png", stored.Image)
	})

	t.Run("second sign-in keeps the same user id", func(t *testing.T) {
		repo := newMemUserRepo()
		svc := testService(repo, func(context.Context, string) (*oauth2.Tokeninfo, error) {
			return &oauth2.Tokeninfo{Audience: "client-123", Email: "visitor@example.com"}, nil
		})

		first, _, err := svc.SignInWithGoogle(context.Background(), "id-token")
		require.NoError(t, err)
		second, _, err := svc.SignInWithGoogle(context.Background(), "id-token")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("audience mismatch is rejected", func(t *testing.T) {
		svc := testService(newMemUserRepo(), func(context.Context, string) (*oauth2.Tokeninfo, error) {
			return &oauth2.Tokeninfo{Audience: "someone-else", Email: "visitor@example.com"}, nil
		})

		_, _, err := svc.SignInWithGoogle(context.Background(), "id-token")
		assert.ErrorIs(t, err, ErrInvalidIDToken)
	})

	t.Run("upstream rejection is rejected", func(t *testing.T) {
		svc := testService(newMemUserRepo(), func(context.Context, string) (*oauth2.Tokeninfo, error) {
			return nil, errors.New("expired")
		})

		_, _, err := svc.SignInWithGoogle(context.Background(), "bad-token")
		assert.ErrorIs(t, err, ErrInvalidIDToken)
	})
}
