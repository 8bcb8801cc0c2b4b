package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/dbtest"
	"github.com/DhavalSuthar-24/lelo/pkg/rmiddleware"
	"github.com/DhavalSuthar-24/lelo/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "mw-secret"

type testUser struct {
	ID    uint `gorm:"primarykey"`
	Email string
	Name  string
	Role  string
}

func (testUser) TableName() string { return "users" }

func setupRouter(t *testing.T) (*gin.Engine, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.Open(t, &testUser{})
	require.NoError(t, db.Create(&testUser{ID: 1, Email: "admin@lelo.ge", Role: common.RoleAdmin}).Error)
	require.NoError(t, db.Create(&testUser{ID: 2, Email: "fan@lelo.ge", Role: common.RoleUser}).Error)

	tokens := map[string]string{}
	for name, id := range map[string]uint{"admin": 1, "fan": 2, "ghost": 3} {
		// the claim says admin for everyone; the users table decides
		signed, err := token.GenerateJWT(id, common.RoleAdmin, secret, 5)
		require.NoError(t, err)
		tokens[name] = signed
	}

	r := gin.New()
	r.GET("/whoami", OptionalAuth(secret, db), func(c *gin.Context) {
		id := common.IdentityFromContext(c)
		c.JSON(http.StatusOK, gin.H{"admin": id.IsAdmin(), "email": id.Email})
	})
	r.POST("/protected", AuthMiddleware(secret, db), rmiddleware.AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, tokens
}

func call(r *gin.Engine, method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminGate(t *testing.T) {
	r, tokens := setupRouter(t)

	tests := []struct {
		name   string
		bearer string
		want   int
	}{
		{"visitor", "", http.StatusUnauthorized},
		{"bad token", "abc", http.StatusUnauthorized},
		{"deleted user", tokens["ghost"], http.StatusUnauthorized},
		{"non admin", tokens["fan"], http.StatusForbidden},
		{"admin", tokens["admin"], http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, http.MethodPost, "/protected", tt.bearer)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	r, tokens := setupRouter(t)

	w := call(r, http.MethodGet, "/whoami", "")
	assert.JSONEq(t, `{"admin":false,"email":""}`, w.Body.String())

	w = call(r, http.MethodGet, "/whoami", "broken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"admin":false,"email":""}`, w.Body.String())

	w = call(r, http.MethodGet, "/whoami", tokens["fan"])
	assert.JSONEq(t, `{"admin":false,"email":"fan@lelo.ge"}`, w.Body.String())

	w = call(r, http.MethodGet, "/whoami", tokens["admin"])
	assert.JSONEq(t, `{"admin":true,"email":"admin@lelo.ge"}`, w.Body.String())
}
