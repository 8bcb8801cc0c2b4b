package middleware

import (
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var errNoHeader = errors.New("authorization header is required")

type identityRow struct {
	ID    uint
	Email string
	Name  string
	Role  string
}

// AuthMiddleware requires a valid bearer token for an existing user. The role comes from the
// users table, so a demotion takes effect on the next request.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, jwtSecret, db)
		if err != nil {
			responses.Unauthorized(c, err.Error())
			return
		}
		common.SetIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and otherwise lets the request
// through as an anonymous visitor.
func OptionalAuth(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := resolve(c, jwtSecret, db)
		if err == nil {
			common.SetIdentity(c, id)
		} else if !errors.Is(err, errNoHeader) {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("ignoring invalid token on optional auth route")
		}
		c.Next()
	}
}

func resolve(c *gin.Context, jwtSecret string, db *gorm.DB) (common.Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return common.Identity{}, errNoHeader
	}

	bearerToken := strings.Fields(authHeader)
	if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
		return common.Identity{}, errors.New("invalid Authorization header format, expected: Bearer <token>")
	}

	claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
	if err != nil {
		return common.Identity{}, errors.New("invalid or expired token")
	}

	var row identityRow
	err = db.WithContext(c.Request.Context()).
		Table("users").
		Select("id, email, name, role").
		Where("id = ?", claims.UserID).
		Take(&row).Error
	if err != nil {
		return common.Identity{}, errors.New("user not found or inactive")
	}

	return common.Identity{UserID: row.ID, Email: row.Email, Name: row.Name, Role: row.Role}, nil
}
