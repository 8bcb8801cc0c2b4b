package news

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

type NewsController struct {
	service *Service
}

func NewNewsController(service *Service) *NewsController {
	return &NewsController{service: service}
}

// GetAllNews godoc
// @Summary List news
// @Description Newest first. Archived items are hidden unless archived=true.
// @Tags News
// @Produce json
// @Param category query string false "League, comma separated, or mens/youth"
// @Param archived query boolean false "Include archived items"
// @Param search query string false "Search title and excerpt"
// @Param limit query int false "Maximum number of items"
// @Success 200 {object} responses.ListResponse{data=[]NewsItem}
// @Failure 400 {object} responses.ErrorResponse
// @Router /news [get]
func (nc *NewsController) GetAllNews(c *gin.Context) {
	cats, err := models.ParseLeagueList(c.Query("category"))
	if err != nil {
		responses.BadRequest(c, err.Error(), nil)
		return
	}
	archived, _ := strconv.ParseBool(c.DefaultQuery("archived", "false"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items := nc.service.List(c.Request.Context(), NewsFilter{
		Categories:      cats,
		IncludeArchived: archived,
		Search:          c.Query("search"),
		Limit:           limit,
	})
	responses.SendList(c, "News retrieved successfully", items, len(items))
}

// GetRecentNews godoc
// @Summary Recent news
// @Tags News
// @Produce json
// @Param limit query int false "Number of items" default(3)
// @Success 200 {object} responses.ListResponse{data=[]NewsItem}
// @Router /news/recent [get]
func (nc *NewsController) GetRecentNews(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultRecentLimit)))
	items := nc.service.Recent(c.Request.Context(), limit)
	responses.SendList(c, "Recent news retrieved successfully", items, len(items))
}

// GetNewsByID godoc
// @Summary Get a news item
// @Description Returns the article and counts the view.
// @Tags News
// @Produce json
// @Param news_id path int true "News ID"
// @Success 200 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 404 {object} responses.ErrorResponse
// @Router /news/{news_id} [get]
func (nc *NewsController) GetNewsByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := nc.service.View(c.Request.Context(), id)
	if err != nil {
		nc.fail(c, err, "Failed to retrieve news item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News item retrieved successfully", item)
}

// CreateNews godoc
// @Summary Create a news item
// @Tags News
// @Accept json
// @Produce json
// @Param news body CreateNewsRequest true "News item"
// @Success 201 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 400 {object} responses.ErrorResponse
// @Router /news [post]
// @Security BearerAuth
func (nc *NewsController) CreateNews(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	item, err := nc.service.Create(c.Request.Context(), req)
	if err != nil {
		nc.fail(c, err, "Failed to create news item")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "News item created successfully", item)
}

// UpdateNews godoc
// @Summary Update a news item
// @Description Partial update. Fields that are not sent keep their value.
// @Tags News
// @Accept json
// @Produce json
// @Param news_id path int true "News ID"
// @Param news body UpdateNewsRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=NewsItem}
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /news/{news_id} [put]
// @Security BearerAuth
func (nc *NewsController) UpdateNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	item, err := nc.service.Update(c.Request.Context(), id, req)
	if err != nil {
		nc.fail(c, err, "Failed to update news item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News item updated successfully", item)
}

// DeleteNews godoc
// @Summary Delete a news item
// @Tags News
// @Param news_id path int true "News ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /news/{news_id} [delete]
// @Security BearerAuth
func (nc *NewsController) DeleteNews(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := nc.service.Delete(c.Request.Context(), id); err != nil {
		nc.fail(c, err, "Failed to delete news item")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "News item deleted successfully", nil)
}

func (nc *NewsController) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, ErrNotFound) {
		responses.NotFound(c, "News item")
		return
	}
	log.Error().Err(err).Msg(msg)
	responses.InternalServerError(c, msg)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("news_id"), 10, 32)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid news ID format", nil)
		return 0, false
	}
	return uint(id), true
}
