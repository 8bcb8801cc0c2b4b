package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StaffController struct {
	service *Service
}

func NewStaffController(service *Service) *StaffController {
	return &StaffController{service: service}
}

// GetStaff godoc
// @Summary List staff
// @Tags Staff
// @Produce json
// @Success 200 {object} responses.ListResponse{data=[]StaffMember}
// @Router /staff [get]
func (sc *StaffController) GetStaff(c *gin.Context) {
	members := sc.service.List(c.Request.Context())
	responses.SendList(c, "Staff retrieved successfully", members, len(members))
}

// GetStaffByID godoc
// @Summary Get a staff member
// @Tags Staff
// @Produce json
// @Param staff_id path int true "Staff ID"
// @Success 200 {object} responses.SuccessResponse{data=StaffMember}
// @Failure 404 {object} responses.ErrorResponse
// @Router /staff/{staff_id} [get]
func (sc *StaffController) GetStaffByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := sc.service.Get(c.Request.Context(), id)
	if err != nil {
		sc.fail(c, err, "Failed to retrieve staff member")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Staff member retrieved successfully", m)
}

// CreateStaff godoc
// @Summary Create a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param staff body CreateStaffRequest true "Staff member"
// @Success 201 {object} responses.SuccessResponse{data=StaffMember}
// @Failure 400 {object} responses.ErrorResponse
// @Router /staff [post]
// @Security BearerAuth
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	m, err := sc.service.Create(c.Request.Context(), req)
	if err != nil {
		sc.fail(c, err, "Failed to create staff member")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Staff member created successfully", m)
}

// UpdateStaff godoc
// @Summary Update a staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param staff_id path int true "Staff ID"
// @Param staff body UpdateStaffRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=StaffMember}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /staff/{staff_id} [put]
// @Security BearerAuth
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	m, err := sc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		sc.fail(c, err, "Failed to update staff member")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Staff member updated successfully", m)
}

// DeleteStaff godoc
// @Summary Delete a staff member
// @Tags Staff
// @Param staff_id path int true "Staff ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /staff/{staff_id} [delete]
// @Security BearerAuth
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := sc.service.Delete(c.Request.Context(), id); err != nil {
		sc.fail(c, err, "Failed to delete staff member")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Staff member deleted successfully", nil)
}

func (sc *StaffController) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Staff member")
		return
	}
	log.Error().Err(err).Msg(msg)
	responses.InternalServerError(c, msg)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("staff_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid staff ID format", nil)
		return 0, false
	}
	return uint(id), true
}
