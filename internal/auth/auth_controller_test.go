package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/DhavalSuthar-24/lelo/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type harness struct {
	router *gin.Engine
	clock  *clockwork.FakeClock
	db     *gorm.DB
}

func setupAuth(t *testing.T) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t, &user.User{}, &RefreshToken{})
	cfg := &config.Config{}
	cfg.JWT.AccessTokenSecret = "access-secret"
	cfg.JWT.RefreshTokenSecret = "refresh-secret"
	cfg.JWT.AccessTokenExpiryMinutes = 15
	cfg.JWT.RefreshTokenExpiryDays = 7

	clock := clockwork.NewFakeClockAt(time.Now())
	r := gin.New()
	RegisterAuthRoutes(r.Group("/api"), db, cfg, clock)
	return &harness{router: r, clock: clock, db: db}
}

func (h *harness) do(t *testing.T, method, path, bearer string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestRegisterLoginSessionFlow(t *testing.T) {
	h := setupAuth(t)

	w, env := h.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email: "fan@example.com", Name: "Fan", Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	assert.False(t, reg.IsAdmin)
	assert.Equal(t, "user", reg.User.Role)

	w, _ = h.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email: "fan@example.com", Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = h.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "fan@example.com", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = h.do(t, http.MethodPost, "/api/auth/login", "", LoginRequest{Email: "FAN@example.com", Password: "password123"})
	require.Equal(t, http.StatusOK, w.Code)
	var login AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.AccessToken)

	w, env = h.do(t, http.MethodGet, "/api/auth/me", login.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var session SessionResponse
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "fan@example.com", session.User.Email)
	assert.False(t, session.IsAdmin)
}

func TestMeRequiresToken(t *testing.T) {
	h := setupAuth(t)

	w, _ := h.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = h.do(t, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshAndLogout(t *testing.T) {
	h := setupAuth(t)

	_, env := h.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email: "fan@example.com", Password: "password123",
	})
	var reg AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &reg))

	w, _ := h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: reg.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodPost, "/api/auth/logout", reg.AccessToken, LogoutRequest{RefreshToken: reg.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: reg.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshTokenExpires(t *testing.T) {
	h := setupAuth(t)

	_, env := h.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Email: "fan@example.com", Password: "password123",
	})
	var reg AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &reg))

	h.clock.Advance(8 * 24 * time.Hour)

	w, _ := h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: reg.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func (h *harness) register(t *testing.T, email string) AuthResponse {
	t.Helper()
	w, env := h.do(t, http.MethodPost, "/api/auth/register", "", RegisterRequest{Email: email, Password: "password123"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &reg))
	return reg
}

func TestRefreshTokenStoredAsDigest(t *testing.T) {
	h := setupAuth(t)
	reg := h.register(t, "fan@example.com")

	var stored []RefreshToken
	require.NoError(t, h.db.Find(&stored).Error)
	require.Len(t, stored, 1)
	assert.NotEqual(t, reg.RefreshToken, stored[0].Token)

	want, err := token.HashRefreshToken(reg.RefreshToken, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, want, stored[0].Token)

	// Replaying the stored column value must not work.
	w, _ := h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: stored[0].Token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutOnlyRevokesOwnToken(t *testing.T) {
	h := setupAuth(t)
	alice := h.register(t, "alice@example.com")
	bob := h.register(t, "bob@example.com")

	w, _ := h.do(t, http.MethodPost, "/api/auth/logout", bob.AccessToken, LogoutRequest{RefreshToken: alice.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: alice.RefreshToken})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = h.do(t, http.MethodPost, "/api/auth/logout", alice.AccessToken, LogoutRequest{RefreshToken: alice.RefreshToken})
	require.Equal(t, http.StatusOK, w.Code)
	w, _ = h.do(t, http.MethodPost, "/api/auth/refresh-token", "", RefreshTokenRequest{RefreshToken: alice.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
