package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/handyman-saas/handyman-platform/internal/models"
	"github.com/handyman-saas/handyman-platform/internal/session"
)

type fakeSessionStore struct {
	sessions map[string]session.Data
	nextID   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]session.Data{}}
}

func (s *fakeSessionStore) Create(_ context.Context, data session.Data) (string, error) {
	s.nextID++
	id := fmt.Sprintf("sess-%d", s.nextID)
	s.sessions[id] = data
	return id, nil
}

func (s *fakeSessionStore) Get(_ context.Context, sessionID string) (*session.Data, error) {
	data, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return &data, nil
}

func (s *fakeSessionStore) Destroy(_ context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	codec := session.NewCookieCodec("test-secret", time.Hour)

	h := NewAuthHandler(db, newFakeSessionStore(), codec, &recordingSink{}, testLogger(), time.Hour)
	h.emailCheck = func(string) bool { return true }

	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r, db
}

func registerBody(username, email string) gin.H {
	return gin.H{
		"username":     username,
		"email":        email,
		"password":     "secret123",
		"businessName": "Handy Co",
	}
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	r, db := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	// same email, different username
	w = doJSON(t, r, http.MethodPost, "/register", registerBody("alice2", "alice@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, message := decodeError(t, w)
	assert.Equal(t, "duplicate_entry", code)
	assert.Equal(t, "Username or email already exists", message)

	// same username, different email
	w = doJSON(t, r, http.MethodPost, "/register", registerBody("alice", "other@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ = decodeError(t, w)
	assert.Equal(t, "duplicate_entry", code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// Lookups fold to lowercase, so a re-register with different casing is still
// a duplicate.
func TestRegister_DuplicateDiffersOnlyInCase(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/register", registerBody("alice", "alice@example.com"))
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/register", registerBody("Alice", "ALICE@example.com"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, "duplicate_entry", code)
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username:     "alice",
		Email:        email,
		PasswordHash: string(hashed),
		BusinessName: "Handy Co",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// An unknown email and a wrong password must produce byte-identical
// responses so the endpoint cannot be used to probe which accounts exist.
func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	r, db := newAuthRouter(t)
	seedUser(t, db, "alice@example.com", "secret123")

	wrongPassword := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "nobody@example.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	code, message := decodeError(t, wrongPassword)
	assert.Equal(t, "invalid_credentials", code)
	assert.Equal(t, "Invalid credentials", message)
}

func TestLogin_Success(t *testing.T) {
	r, db := newAuthRouter(t)
	seedUser(t, db, "alice@example.com", "secret123")

	w := doJSON(t, r, http.MethodPost, "/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirectUrl":"/dashboard"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
