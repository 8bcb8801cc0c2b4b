package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/lelo/internal/common"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UserController serves the admin user manager.
type UserController struct {
	service *Service
}

func NewUserController(service *Service) *UserController {
	return &UserController{service: service}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} responses.ListResponse{data=[]User}
// @Router /users [get]
// @Security BearerAuth
func (uc *UserController) ListUsers(c *gin.Context) {
	users := uc.service.List(c.Request.Context())
	responses.SendList(c, "Users retrieved successfully", users, len(users))
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User"
// @Success 201 {object} responses.SuccessResponse{data=User}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /users [post]
// @Security BearerAuth
func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := uc.service.Create(c.Request.Context(), req)
	if err != nil {
		uc.fail(c, err, "Failed to create user")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", u)
}

// SetRole godoc
// @Summary Set or toggle a user's role
// @Description An empty body toggles between admin and user. The last admin cannot be demoted.
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param role body SetRoleRequest false "Role"
// @Success 200 {object} responses.SuccessResponse{data=User}
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /users/{user_id}/role [put]
// @Security BearerAuth
func (uc *UserController) SetRole(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req SetRoleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.BadRequest(c, "Validation failed", validator.ParseError(err))
			return
		}
	}

	u, err := uc.service.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		uc.fail(c, err, "Failed to update role")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Role updated successfully", u)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Param user_id path int true "User ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /users/{user_id} [delete]
// @Security BearerAuth
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if caller := common.IdentityFromContext(c); caller.UserID == id {
		responses.Conflict(c, "You cannot delete your own account")
		return
	}
	if err := uc.service.Delete(c.Request.Context(), id); err != nil {
		uc.fail(c, err, "Failed to delete user")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

func (uc *UserController) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "User")
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrLastAdmin):
		responses.Conflict(c, err.Error())
	case errors.Is(err, ErrInvalidRole):
		responses.BadRequest(c, err.Error(), nil)
	default:
		log.Error().Err(err).Msg(msg)
		responses.InternalServerError(c, msg)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid user ID format", nil)
		return 0, false
	}
	return uint(id), true
}
