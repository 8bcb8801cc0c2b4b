package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/DhavalSuthar-24/lelo/config"
	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/internal/user"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/token"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	repo   AuthRepository
	users  *user.Service
	config *config.Config
	clock  clockwork.Clock
}

func NewAuthController(repo AuthRepository, users *user.Service, cfg *config.Config, clock clockwork.Clock) *AuthController {
	return &AuthController{
		repo:   repo,
		users:  users,
		config: cfg,
		clock:  clock,
	}
}

func (ac *AuthController) generateAndSaveTokens(c *gin.Context, u *user.User) (string, string, error) {
	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := token.GenerateRefreshToken()
	if err != nil {
		return "", "", err
	}
	digest, err := token.HashRefreshToken(refreshTokenString, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		return "", "", err
	}

	refreshToken := &RefreshToken{
		UserID:    u.ID,
		Token:     digest,
		ExpiresAt: ac.clock.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}
	if err := ac.repo.SaveRefreshToken(c.Request.Context(), refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

func (ac *AuthController) respondWithTokens(c *gin.Context, status int, msg string, u *user.User) {
	accessToken, refreshToken, err := ac.generateAndSaveTokens(c, u)
	if err != nil {
		log.Error().Err(err).Uint("user_id", u.ID).Msg("token issue failed")
		responses.InternalServerError(c, "Failed to issue session tokens")
		return
	}
	responses.SendSuccess(c, status, msg, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
		IsAdmin:      u.IsAdmin(),
	})
}

// Register godoc
// @Summary      Register
// @Description  Creates a regular (non-admin) account and signs it in.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration"
// @Success      201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      409 {object} responses.ErrorResponse
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.users.Create(c.Request.Context(), user.CreateUserRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     common.RoleUser,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			responses.Conflict(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("register failed")
		responses.InternalServerError(c, "Failed to register user")
		return
	}
	ac.respondWithTokens(c, http.StatusCreated, "Registration successful", u)
}

// Login godoc
// @Summary      Login
// @Description  Signs in with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400 {object} responses.ErrorResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := ac.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			responses.Unauthorized(c, err.Error())
			return
		}
		log.Error().Err(err).Msg("login failed")
		responses.InternalServerError(c, "")
		return
	}
	ac.respondWithTokens(c, http.StatusOK, "Login successful", u)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	ctx := c.Request.Context()
	digest, err := token.HashRefreshToken(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		log.Error().Err(err).Msg("refresh token digest failed")
		responses.InternalServerError(c, "")
		return
	}
	rt, err := ac.repo.GetRefreshToken(ctx, digest, ac.clock.Now())
	if err != nil {
		log.Error().Err(err).Msg("refresh token lookup failed")
		responses.InternalServerError(c, "")
		return
	}
	if rt == nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	u, err := ac.users.Get(ctx, rt.UserID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	accessToken, err := token.GenerateJWT(u.ID, u.Role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		responses.InternalServerError(c, "New access token generation failed")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", gin.H{"access_token": accessToken, "is_admin": u.IsAdmin()})
}

// GetSession godoc
// @Summary      Current session
// @Description  Returns the signed-in user and whether it holds the admin role.
// @Tags         Auth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=SessionResponse}
// @Failure      401 {object} responses.ErrorResponse
// @Router       /auth/me [get]
// @Security     BearerAuth
func (ac *AuthController) GetSession(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}
	u, err := ac.users.Get(c.Request.Context(), userID)
	if err != nil {
		responses.NotFound(c, "User")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Session retrieved", SessionResponse{
		User:    FilterUserRecord(u),
		IsAdmin: u.IsAdmin(),
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the given refresh token, or every session of the user.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Logout options"
// @Success      200 {object} responses.SuccessResponse
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req LogoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, "Validation failed", validator.ParseError(err))
			return
		}
	}

	ctx := c.Request.Context()
	if req.RefreshToken != "" {
		digest, err := token.HashRefreshToken(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
		if err == nil {
			err = ac.repo.InvalidateRefreshToken(ctx, userID, digest)
		}
		if err != nil {
			log.Error().Err(err).Msg("revoke refresh token failed")
			responses.InternalServerError(c, "Failed to invalidate refresh token")
			return
		}
	}
	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(ctx, userID); err != nil {
			log.Error().Err(err).Msg("revoke all sessions failed")
			responses.InternalServerError(c, "Failed to invalidate all sessions")
			return
		}
	}

	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", gin.H{
		"all_sessions_invalidated": req.InvalidateAllSessions,
	})
}
