package content

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/lelo/pkg/responses"
	"github.com/DhavalSuthar-24/lelo/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ContentController struct {
	service *Service
}

func NewContentController(service *Service) *ContentController {
	return &ContentController{service: service}
}

// GetContent godoc
// @Summary List editable content
// @Tags Content
// @Produce json
// @Param section query string false "Section"
// @Success 200 {object} responses.ListResponse{data=[]EditableContent}
// @Router /content [get]
func (cc *ContentController) GetContent(c *gin.Context) {
	items := cc.service.List(c.Request.Context(), c.Query("section"))
	responses.SendList(c, "Content retrieved successfully", items, len(items))
}

// GetValue godoc
// @Summary Get a content value
// @Description Returns the stored value, or the default when the key is missing or empty.
// @Tags Content
// @Produce json
// @Param key path string true "Content key"
// @Param default query string false "Fallback value"
// @Success 200 {object} responses.SuccessResponse{data=ValueResponse}
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/{key} [get]
func (cc *ContentController) GetValue(c *gin.Context) {
	key := c.Param("key")
	if !ValidKey(key) {
		responses.BadRequest(c, ErrInvalidKey.Error(), nil)
		return
	}
	resp := cc.service.Lookup(c.Request.Context(), key, c.Query("default"))
	responses.SendSuccess(c, http.StatusOK, "Content retrieved successfully", resp)
}

// UpsertValue godoc
// @Summary Set a content value
// @Tags Content
// @Accept json
// @Produce json
// @Param key path string true "Content key"
// @Param content body UpsertContentRequest true "Value, with optional type and section"
// @Success 200 {object} responses.SuccessResponse{data=EditableContent}
// @Failure 400 {object} responses.ErrorResponse
// @Router /content/{key} [put]
// @Security BearerAuth
func (cc *ContentController) UpsertValue(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	req.Key = c.Param("key")
	ec, err := cc.service.Upsert(c.Request.Context(), req)
	if err != nil {
		cc.fail(c, err, "Failed to save content")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Content saved successfully", ec)
}

// BulkUpsert godoc
// @Summary Set several content values
// @Tags Content
// @Accept json
// @Produce json
// @Param content body BulkUpsertRequest true "Items"
// @Success 200 {object} responses.SuccessResponse
// @Failure 400 {object} responses.ErrorResponse
// @Router /content [put]
// @Security BearerAuth
func (cc *ContentController) BulkUpsert(c *gin.Context) {
	var req BulkUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Validation failed", validator.ParseError(err))
		return
	}
	n, err := cc.service.BulkUpsert(c.Request.Context(), req.Items)
	if err != nil {
		cc.fail(c, err, "Failed to save content")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Content saved successfully", gin.H{"updated": n})
}

// DeleteValue godoc
// @Summary Delete a content key
// @Tags Content
// @Param key path string true "Content key"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /content/{key} [delete]
// @Security BearerAuth
func (cc *ContentController) DeleteValue(c *gin.Context) {
	if err := cc.service.DeleteByKey(c.Request.Context(), c.Param("key")); err != nil {
		cc.fail(c, err, "Failed to delete content")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Content deleted successfully", nil)
}

func (cc *ContentController) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		responses.NotFound(c, "Content")
	case errors.Is(err, ErrInvalidKey):
		responses.BadRequest(c, err.Error(), nil)
	default:
		log.Error().Err(err).Msg(msg)
		responses.InternalServerError(c, msg)
	}
}
