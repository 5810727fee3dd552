package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"moview-api/internal/data/entity"
	"moview-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return nil, nil
}

var testJWTConfig = utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}

func authProtected(repo *stubUserRepo, next *capture) http.Handler {
	return Auth(repo, testJWTConfig, zap.NewNop())(next)
}

type capture struct {
	called   bool
	userID   uuid.UUID
	username string
}

func (c *capture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.userID, _ = utils.GetUserIDFromContext(r.Context())
	c.username, _ = utils.GetUsernameFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestAuthValidToken(t *testing.T) {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username: "moviefan",
	}
	token, _, err := utils.GenerateAccessToken(user.ID, user.Username, testJWTConfig)
	require.NoError(t, err)

	next := &capture{}
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authProtected(&stubUserRepo{user: user}, next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, next.called)
	assert.Equal(t, user.ID, next.userID)
	assert.Equal(t, "moviefan", next.username)
}

func TestAuthMissingHeader(t *testing.T) {
	next := &capture{}
	recorder := httptest.NewRecorder()

	authProtected(&stubUserRepo{}, next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, next.called)
}

func TestAuthMalformedHeader(t *testing.T) {
	next := &capture{}
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")

	authProtected(&stubUserRepo{}, next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, next.called)
}

func TestAuthBadToken(t *testing.T) {
	next := &capture{}
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	authProtected(&stubUserRepo{}, next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, next.called)
}

func TestAuthDeletedUser(t *testing.T) {
	token, _, err := utils.GenerateAccessToken(uuid.New(), "ghost", testJWTConfig)
	require.NoError(t, err)

	next := &capture{}
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	authProtected(&stubUserRepo{}, next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, next.called)
}
