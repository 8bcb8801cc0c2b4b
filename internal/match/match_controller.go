package match

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/lelo/internal/models"
	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type MatchController struct {
	service *Service
}

func NewMatchController(service *Service) *MatchController {
	return &MatchController{service: service}
}

// GetMatches godoc
// @Summary List matches
// @Description Ordered by kick-off. category accepts a comma separated list or the mens/youth groups.
// @Tags Matches
// @Produce json
// @Param category query string false "League filter"
// @Param status query string false "scheduled, live or finished"
// @Success 200 {object} responses.ListResponse{data=[]Match}
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	cats, err := models.ParseLeagueList(c.Query("category"))
	if err != nil {
		responses.BadRequest(c, err.Error(), nil)
		return
	}
	status := MatchStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		responses.BadRequest(c, "Invalid match status", map[string]string{"status": "status must be one of: scheduled live finished"})
		return
	}
	matches := mc.service.List(c.Request.Context(), MatchFilter{Categories: cats, Status: status})
	responses.SendList(c, "Matches retrieved successfully", matches, len(matches))
}

// GetUpcomingMatches godoc
// @Summary Upcoming matches
// @Description Fixtures at or after the current time, soonest first.
// @Tags Matches
// @Produce json
// @Param category query string false "League filter"
// @Param limit query int false "Maximum number of matches"
// @Success 200 {object} responses.ListResponse{data=[]Match}
// @Router /matches/upcoming [get]
func (mc *MatchController) GetUpcomingMatches(c *gin.Context) {
	cats, err := models.ParseLeagueList(c.Query("category"))
	if err != nil {
		responses.BadRequest(c, err.Error(), nil)
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	matches := mc.service.Upcoming(c.Request.Context(), cats, limit)
	responses.SendList(c, "Upcoming matches retrieved successfully", matches, len(matches))
}

// GetMatchByID godoc
// @Summary Get a match
// @Tags Matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [get]
func (mc *MatchController) GetMatchByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := mc.service.Get(c.Request.Context(), id)
	if err != nil {
		mc.fail(c, err, "Failed to retrieve match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match retrieved successfully", m)
}

// CreateMatch godoc
// @Summary Create a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match body CreateMatchRequest true "Match details"
// @Success 201 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Router /matches [post]
// @Security BearerAuth
func (mc *MatchController) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	m, err := mc.service.Create(c.Request.Context(), req)
	if err != nil {
		mc.fail(c, err, "Failed to create match")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Match created successfully", m)
}

// UpdateMatch godoc
// @Summary Update a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param match body UpdateMatchRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Match}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [put]
// @Security BearerAuth
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	m, err := mc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		mc.fail(c, err, "Failed to update match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match updated successfully", m)
}

// DeleteMatch godoc
// @Summary Delete a match
// @Tags Matches
// @Param match_id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /matches/{match_id} [delete]
// @Security BearerAuth
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := mc.service.Delete(c.Request.Context(), id); err != nil {
		mc.fail(c, err, "Failed to delete match")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Match deleted successfully", nil)
}

func (mc *MatchController) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Match")
		return
	}
	log.Error().Err(err).Msg(msg)
	responses.InternalServerError(c, msg)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("match_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid match ID format", nil)
		return 0, false
	}
	return uint(id), true
}
