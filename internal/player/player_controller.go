package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type PlayerController struct {
	service *Service
}

func NewPlayerController(service *Service) *PlayerController {
	return &PlayerController{service: service}
}

// GetPlayers godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param team query string false "mens, womens, youth or coaches"
// @Param active query boolean false "Only active players"
// @Success 200 {object} responses.ListResponse{data=[]Player}
// @Failure 400 {object} responses.ErrorResponse
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	team := Team(c.Query("team"))
	if team != "" && !team.Valid() {
		responses.BadRequest(c, "Invalid team", map[string]string{"team": "team must be one of: mens womens youth coaches"})
		return
	}
	active, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	players := pc.service.List(c.Request.Context(), PlayerFilter{Team: team, ActiveOnly: active})
	responses.SendList(c, "Players retrieved successfully", players, len(players))
}

// GetPlayerByID godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [get]
func (pc *PlayerController) GetPlayerByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := pc.service.Get(c.Request.Context(), id)
	if err != nil {
		pc.fail(c, err, "Failed to retrieve player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player retrieved successfully", p)
}

// CreatePlayer godoc
// @Summary Create a player
// @Description category is derived from team.
// @Tags Players
// @Accept json
// @Produce json
// @Param player body CreatePlayerRequest true "Player"
// @Success 201 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Router /players [post]
// @Security BearerAuth
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	p, err := pc.service.Create(c.Request.Context(), req)
	if err != nil {
		pc.fail(c, err, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created successfully", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags Players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body UpdatePlayerRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Player}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [put]
// @Security BearerAuth
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	p, err := pc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		pc.fail(c, err, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated successfully", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags Players
// @Param player_id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /players/{player_id} [delete]
// @Security BearerAuth
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := pc.service.Delete(c.Request.Context(), id); err != nil {
		pc.fail(c, err, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted successfully", nil)
}

func (pc *PlayerController) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "Player")
		return
	}
	log.Error().Err(err).Msg(msg)
	responses.InternalServerError(c, msg)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("player_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid player ID format", nil)
		return 0, false
	}
	return uint(id), true
}
